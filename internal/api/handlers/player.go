package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/pkg/utils"
)

type PlayerHandler struct {
	league *league.Service
}

func NewPlayerHandler(svc *league.Service) *PlayerHandler {
	return &PlayerHandler{league: svc}
}

// GetPlayer returns a single player by ID
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := idParam(c, "player")
	if !ok {
		return
	}
	player, err := h.league.Store().GetPlayer(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, player)
}

// GetPositionFit projects the player's ratings at every position.
func (h *PlayerHandler) GetPositionFit(c *gin.Context) {
	id, ok := idParam(c, "player")
	if !ok {
		return
	}
	fits, err := h.league.PositionFits(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, fits)
}

// GetDevelopment returns the player's recent attribute gains, newest first.
func (h *PlayerHandler) GetDevelopment(c *gin.Context) {
	id, ok := idParam(c, "player")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		utils.SendValidationError(c, "Invalid limit", "limit must be between 1 and 500")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.league.Store().GetPlayer(ctx, id); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	logs, err := h.league.Store().PlayerDevelopment(ctx, id, limit)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, logs)
}
