package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	"github.com/Ralph-Dulla-23/CMS/internal/service"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
	"github.com/Ralph-Dulla-23/CMS/pkg/response"
)

type scheduleService interface {
	MonthView(ctx context.Context, year int, month time.Month, selected models.Date) (models.MonthView, error)
	DayView(ctx context.Context, day models.Date) ([]service.SessionListItem, error)
}

// ScheduleHandler exposes calendar and day-schedule endpoints.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Month godoc
// @Summary Month calendar grid
// @Tags Schedule
// @Produce json
// @Param year query int false "Calendar year, defaults to the current year"
// @Param month query int false "Calendar month (1-12), defaults to the current month"
// @Param selected query string false "Highlighted day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /schedule/month [get]
func (h *ScheduleHandler) Month(c *gin.Context) {
	today := models.Today()
	year := today.Year
	month := time.Month(today.Month)

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be an integer"))
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "month must be between 1 and 12"))
			return
		}
		month = time.Month(parsed)
	}

	selected := models.Date{}
	if raw := c.Query("selected"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "selected must be formatted as YYYY-MM-DD"))
			return
		}
		selected = parsed
	}

	view, err := h.service.MonthView(c.Request.Context(), year, month, selected)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Day godoc
// @Summary Sessions scheduled on a day
// @Tags Schedule
// @Produce json
// @Param date query string true "Day to list (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /schedule/day [get]
func (h *ScheduleHandler) Day(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date required"))
		return
	}
	day, err := models.ParseDate(raw)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date must be formatted as YYYY-MM-DD"))
		return
	}
	sessions, err := h.service.DayView(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}
