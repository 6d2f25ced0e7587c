package handlers

import (
	"github.com/gin-gonic/gin"
	fb "github.com/rhuselid/gmcareer/internal/football"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/pkg/logger"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"github.com/sirupsen/logrus"
)

type TeamHandler struct {
	league *league.Service
}

func NewTeamHandler(svc *league.Service) *TeamHandler {
	return &TeamHandler{league: svc}
}

// GetTeam returns a single team by ID
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	team, err := h.league.Store().GetTeam(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, team)
}

// GetRoster returns a team's players ordered by position then overall.
func (h *TeamHandler) GetRoster(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := h.league.Store().GetTeam(ctx, id); err != nil {
		utils.SendServiceError(c, err)
		return
	}
	players, err := h.league.Store().TeamRoster(ctx, id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, players)
}

func (h *TeamHandler) GetRecord(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	rec, err := h.league.TeamRecord(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"record":     rec,
		"point_diff": rec.PointDiff(),
	})
}

// GetSchedule returns the team's matchups for the current season.
func (h *TeamHandler) GetSchedule(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	state, err := h.league.SeasonState(ctx)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	entries, err := h.league.Store().TeamSchedule(ctx, id, state.CurrentSeason)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, entries)
}

func (h *TeamHandler) GetPracticePlan(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	plan, err := h.league.PracticePlan(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, plan)
}

type practicePlanRequest struct {
	OffenseFocus string `json:"offense_focus"`
	DefenseFocus string `json:"defense_focus"`
}

// UpdatePracticePlan sets the team's focus from the current week onward.
func (h *TeamHandler) UpdatePracticePlan(c *gin.Context) {
	id, ok := idParam(c, "team")
	if !ok {
		return
	}
	var req practicePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	plan, err := h.league.SetPracticePlan(c.Request.Context(), id, fb.PracticePlan{
		OffenseFocus: req.OffenseFocus,
		DefenseFocus: req.DefenseFocus,
	})
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	logger.WithTeam(id).WithFields(logrus.Fields{
		"offense_focus": plan.OffenseFocus,
		"defense_focus": plan.DefenseFocus,
	}).Info("Practice plan updated")
	utils.SendSuccess(c, plan)
}

// GetStandings ranks a division for the current season.
func (h *TeamHandler) GetStandings(c *gin.Context) {
	id, ok := idParam(c, "division")
	if !ok {
		return
	}
	standings, err := h.league.Standings(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, standings)
}
