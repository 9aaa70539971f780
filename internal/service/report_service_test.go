package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

type dayListerStub struct {
	items []SessionListItem
	err   error
}

func (s dayListerStub) DayView(ctx context.Context, day models.Date) ([]SessionListItem, error) {
	return s.items, s.err
}

func TestReportServiceExportCSV(t *testing.T) {
	lister := dayListerStub{items: []SessionListItem{
		{StudentName: "Jamie Cruz", CourseYearSection: "BSIT 2-1", Time: "2:30 PM", Label: models.LabelWalkIn, Status: models.StatusConfirmed},
	}}
	svc := NewReportService(lister, true, nil)

	file, err := svc.ExportDay(context.Background(), models.NewDate(2024, time.May, 10), ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "sessions-2024-05-10.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	content := string(file.Content)
	assert.True(t, strings.HasPrefix(content, "Student,Course,Time,Type,Status,Remarks"))
	assert.Contains(t, content, "Jamie Cruz")
	assert.Contains(t, content, "2:30 PM")
}

func TestReportServiceExportDefaultsToCSV(t *testing.T) {
	svc := NewReportService(dayListerStub{}, true, nil)
	file, err := svc.ExportDay(context.Background(), models.NewDate(2024, time.May, 10), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestReportServiceExportPDF(t *testing.T) {
	lister := dayListerStub{items: []SessionListItem{
		{StudentName: "Jamie Cruz", Time: "2:30 PM", Label: models.LabelReferral, Status: models.StatusPending},
	}}
	svc := NewReportService(lister, true, nil)

	file, err := svc.ExportDay(context.Background(), models.NewDate(2024, time.May, 10), ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "sessions-2024-05-10.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestReportServiceExportUnknownFormat(t *testing.T) {
	svc := NewReportService(dayListerStub{}, true, nil)
	_, err := svc.ExportDay(context.Background(), models.NewDate(2024, time.May, 10), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportServiceDisabled(t *testing.T) {
	svc := NewReportService(dayListerStub{}, false, nil)
	_, err := svc.ExportDay(context.Background(), models.NewDate(2024, time.May, 10), ReportFormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
