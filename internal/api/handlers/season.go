package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/internal/league"
	"github.com/rhuselid/gmcareer/pkg/utils"
)

type SeasonHandler struct {
	league *league.Service
}

func NewSeasonHandler(svc *league.Service) *SeasonHandler {
	return &SeasonHandler{league: svc}
}

func (h *SeasonHandler) GetState(c *gin.Context) {
	state, err := h.league.SeasonState(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, state)
}

// SimulateWeek plays the current week and advances the clock.
func (h *SeasonHandler) SimulateWeek(c *gin.Context) {
	report, err := h.league.SimulateWeek(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, report)
}

// SimulateAll plays every remaining week of the season.
func (h *SeasonHandler) SimulateAll(c *gin.Context) {
	reports, err := h.league.SimulateRemaining(c.Request.Context())
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"weeks_simulated": len(reports),
		"weeks":           reports,
	})
}
