package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ralph-Dulla-23/CMS/internal/service"
	"github.com/Ralph-Dulla-23/CMS/pkg/response"
)

type statsService interface {
	Summary(ctx context.Context) (*service.StatsSummary, error)
}

// StatsHandler exposes aggregate counters for the staff dashboard.
type StatsHandler struct {
	service statsService
}

// NewStatsHandler builds a new handler.
func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Summary godoc
// @Summary Intake and session summary counts
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /stats/summary [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}
