package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	"github.com/Ralph-Dulla-23/CMS/internal/service"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
	"github.com/Ralph-Dulla-23/CMS/pkg/response"
)

type availabilityService interface {
	List(ctx context.Context) ([]models.UnavailableDate, error)
	Snapshot(ctx context.Context) (models.AvailabilitySnapshot, error)
	Add(ctx context.Context, req service.MarkUnavailableRequest) ([]models.UnavailableDate, error)
	Remove(ctx context.Context, req service.RemoveUnavailableRequest) ([]models.UnavailableDate, error)
}

// AvailabilityHandler exposes unavailable-date management endpoints.
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler builds a new handler.
func NewAvailabilityHandler(service availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// List godoc
// @Summary List unavailable dates
// @Tags Availability
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /unavailable-dates [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Add godoc
// @Summary Mark dates as unavailable
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.MarkUnavailableRequest true "Dates payload"
// @Success 201 {object} response.Envelope
// @Router /unavailable-dates [post]
func (h *AvailabilityHandler) Add(c *gin.Context) {
	var req service.MarkUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid unavailable dates payload"))
		return
	}
	entries, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, entries, nil)
}

// Remove godoc
// @Summary Remove dates from the unavailable set
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.RemoveUnavailableRequest true "Dates payload"
// @Success 200 {object} response.Envelope
// @Router /unavailable-dates [delete]
func (h *AvailabilityHandler) Remove(c *gin.Context) {
	var req service.RemoveUnavailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid unavailable dates payload"))
		return
	}
	entries, err := h.service.Remove(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Check godoc
// @Summary Check whether a date can accept a booking
// @Tags Availability
// @Produce json
// @Param date query string true "Candidate date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /availability/check [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date required"))
		return
	}
	candidate, err := models.ParseDate(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be formatted as YYYY-MM-DD"))
		return
	}
	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	decision := service.DecideBooking(candidate, models.Today(), snapshot)
	response.JSON(c, http.StatusOK, decision, nil)
}
