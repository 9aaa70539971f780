package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	"github.com/Ralph-Dulla-23/CMS/internal/service"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
	"github.com/Ralph-Dulla-23/CMS/pkg/response"
)

type intakeService interface {
	Submit(ctx context.Context, req service.SubmitFormRequest) (*models.InterviewForm, error)
	List(ctx context.Context, req service.FormListRequest) ([]models.InterviewForm, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.InterviewForm, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdateFormStatusRequest) (*models.InterviewForm, error)
}

type dayReportService interface {
	ExportDay(ctx context.Context, day models.Date, format string) (*service.ReportFile, error)
}

// IntakeHandler exposes interview form endpoints.
type IntakeHandler struct {
	service intakeService
	reports dayReportService
}

// NewIntakeHandler builds a new handler.
func NewIntakeHandler(service intakeService, reports dayReportService) *IntakeHandler {
	return &IntakeHandler{service: service, reports: reports}
}

// Submit godoc
// @Summary Submit an interview form
// @Tags Interview Forms
// @Accept json
// @Produce json
// @Param payload body service.SubmitFormRequest true "Intake payload"
// @Success 201 {object} response.Envelope
// @Router /interview-forms [post]
func (h *IntakeHandler) Submit(c *gin.Context) {
	var req service.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid interview form payload"))
		return
	}
	form, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, form)
}

// List godoc
// @Summary List interview forms
// @Tags Interview Forms
// @Produce json
// @Param status query string false "Filter by status"
// @Param isReferral query bool false "Filter by referral flag"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /interview-forms [get]
func (h *IntakeHandler) List(c *gin.Context) {
	req := service.FormListRequest{
		Status: c.Query("status"),
	}
	if raw := c.Query("isReferral"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "isReferral must be a boolean"))
			return
		}
		req.IsReferral = &parsed
	}
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			req.Page = parsed
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			req.PageSize = parsed
		}
	}
	forms, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, forms, pagination)
}

// Get godoc
// @Summary Get an interview form by ID
// @Tags Interview Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Envelope
// @Router /interview-forms/{id} [get]
func (h *IntakeHandler) Get(c *gin.Context) {
	form, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// UpdateStatus godoc
// @Summary Update form status and remarks
// @Tags Interview Forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param payload body service.UpdateFormStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Router /interview-forms/{id}/status [patch]
func (h *IntakeHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateFormStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	form, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// Export godoc
// @Summary Export a day's sessions
// @Tags Interview Forms
// @Produce text/csv
// @Produce application/pdf
// @Param date query string true "Day to export (YYYY-MM-DD)"
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} file
// @Router /interview-forms/export [get]
func (h *IntakeHandler) Export(c *gin.Context) {
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
	format := c.DefaultQuery("format", service.ReportFormatCSV)
	file, err := h.reports.ExportDay(c.Request.Context(), day, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.Filename)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
