package controllers

import (
	"net/http"

	"inkwell/app/services"
)

// StatsController serves the aggregate statistics endpoint
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Show computes and returns the aggregate statistics
func (sc *StatsController) Show(w http.ResponseWriter, r *http.Request) {
	stats, err := sc.statsService.ComputeStats()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, stats)
}
