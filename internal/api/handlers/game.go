package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/pkg/logger"
	"github.com/rhuselid/gmcareer/pkg/utils"
)

type GameHandler struct {
	league *league.Service
}

func NewGameHandler(svc *league.Service) *GameHandler {
	return &GameHandler{league: svc}
}

type exhibitionRequest struct {
	HomeTeamID uint  `json:"home_team_id" binding:"required"`
	AwayTeamID uint  `json:"away_team_id" binding:"required"`
	Seed       int64 `json:"seed"`
}

// SimulateExhibition plays two teams without touching the standings.
func (h *GameHandler) SimulateExhibition(c *gin.Context) {
	var req exhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.league.SimulateExhibition(c.Request.Context(), req.HomeTeamID, req.AwayTeamID, req.Seed)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	logger.WithGame(0, req.HomeTeamID, req.AwayTeamID).WithField("seed", result.Seed).Debug("Exhibition played")
	utils.SendSuccess(c, result)
}

// GetGame returns a stored game with its full box score.
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := idParam(c, "game")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	game, err := h.league.Store().GetGame(ctx, id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	result, err := h.league.GameResult(ctx, id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"id":      game.ID,
		"season":  game.Season,
		"week":    game.Week,
		"run_id":  game.RunID,
		"seed":    game.Seed,
		"winner":  result.Winner(),
		"home":    result.Home,
		"away":    result.Away,
		"created": game.CreatedAt,
	})
}
