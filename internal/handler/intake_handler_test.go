package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	"github.com/Ralph-Dulla-23/CMS/internal/service"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

type intakeServiceMock struct {
	form       *models.InterviewForm
	forms      []models.InterviewForm
	pagination *models.Pagination
	err        error
	listReq    *service.FormListRequest
}

func (m *intakeServiceMock) Submit(ctx context.Context, req service.SubmitFormRequest) (*models.InterviewForm, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.form, nil
}

func (m *intakeServiceMock) List(ctx context.Context, req service.FormListRequest) ([]models.InterviewForm, *models.Pagination, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	m.listReq = &req
	return m.forms, m.pagination, nil
}

func (m *intakeServiceMock) Get(ctx context.Context, id string) (*models.InterviewForm, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.form, nil
}

func (m *intakeServiceMock) UpdateStatus(ctx context.Context, id string, req service.UpdateFormStatusRequest) (*models.InterviewForm, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.form, nil
}

type reportServiceMock struct {
	file *service.ReportFile
	err  error
}

func (m *reportServiceMock) ExportDay(ctx context.Context, day models.Date, format string) (*service.ReportFile, error) {
	return m.file, m.err
}

func TestIntakeHandlerSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &intakeServiceMock{form: &models.InterviewForm{ID: "f1", StudentName: "Jamie Cruz", Status: models.StatusPending}}
	handler := NewIntakeHandler(mock, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{"consentGiven":true,"studentName":"Jamie Cruz","dateTime":"2024-05-15T10:00"}`)
	req, _ := http.NewRequest(http.MethodPost, "/interview-forms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Submit(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Jamie Cruz")
}

func TestIntakeHandlerSubmitInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewIntakeHandler(&intakeServiceMock{}, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/interview-forms", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeHandlerSubmitUnavailableDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &intakeServiceMock{err: appErrors.Clone(appErrors.ErrDateUnavailable, "")}
	handler := NewIntakeHandler(mock, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{"consentGiven":true,"studentName":"Jamie Cruz","dateTime":"2024-05-15T10:00"}`)
	req, _ := http.NewRequest(http.MethodPost, "/interview-forms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Submit(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DATE_UNAVAILABLE")
}

func TestIntakeHandlerListFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &intakeServiceMock{pagination: &models.Pagination{Page: 1, PageSize: 50}}
	handler := NewIntakeHandler(mock, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/interview-forms?status=Pending&isReferral=true&page=2&pageSize=10", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.listReq)
	assert.Equal(t, "Pending", mock.listReq.Status)
	require.NotNil(t, mock.listReq.IsReferral)
	assert.True(t, *mock.listReq.IsReferral)
	assert.Equal(t, 2, mock.listReq.Page)
	assert.Equal(t, 10, mock.listReq.PageSize)
}

func TestIntakeHandlerListBadReferralFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewIntakeHandler(&intakeServiceMock{}, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/interview-forms?isReferral=maybe", nil)

	handler.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &intakeServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "interview form not found")}
	handler := NewIntakeHandler(mock, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/interview-forms/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntakeHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reports := &reportServiceMock{file: &service.ReportFile{
		Content:     []byte("Student,Course\n"),
		Filename:    "sessions-2024-05-10.csv",
		ContentType: "text/csv",
	}}
	handler := NewIntakeHandler(&intakeServiceMock{}, reports)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/interview-forms/export?date=2024-05-10", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sessions-2024-05-10.csv")
}

func TestIntakeHandlerExportBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewIntakeHandler(&intakeServiceMock{}, &reportServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/interview-forms/export?date=tomorrow", nil)

	handler.Export(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
