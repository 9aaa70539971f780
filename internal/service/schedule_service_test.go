package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

type formReaderStub struct {
	forms []models.InterviewForm
	err   error
}

func (s formReaderStub) ListAll(ctx context.Context) ([]models.InterviewForm, error) {
	return s.forms, s.err
}

func fixedScheduleService(forms []models.InterviewForm, snapshot models.AvailabilitySnapshot, now time.Time) *ScheduleService {
	svc := NewScheduleService(formReaderStub{forms: forms}, snapshotStub{snapshot: snapshot}, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestScheduleServiceMonthViewAnnotatesSessions(t *testing.T) {
	forms := []models.InterviewForm{
		{ID: "f1", DateTime: "2024-05-01T10:00"},
		{ID: "f2", SubmissionDate: "2024-05-10T08:00:00Z"},
		{ID: "f3", DateTime: "nonsense"},
	}
	now := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)
	svc := fixedScheduleService(forms, blockedSnapshot(), now)

	view, err := svc.MonthView(context.Background(), 2024, time.May, models.Date{})
	require.NoError(t, err)

	withSession := map[int]bool{}
	for _, week := range view.Weeks {
		for _, cell := range week.Days {
			if cell != nil && cell.HasSession {
				withSession[cell.Date.Day] = true
			}
		}
	}
	assert.Equal(t, map[int]bool{1: true, 10: true}, withSession)
}

func TestScheduleServiceDayView(t *testing.T) {
	forms := []models.InterviewForm{
		{
			ID:          "f1",
			StudentName: "Jamie Cruz",
			DateTime:    "2024-05-10T14:30",
			Status:      models.StatusConfirmed,
		},
		{
			ID:           "f2",
			StudentName:  "Sam Reyes",
			Remarks:      models.RemarkFollowUp,
			FollowUpDate: "2024-05-10",
			DateTime:     "2024-05-03T09:00",
		},
		{ID: "f3", StudentName: "Elsewhere", DateTime: "2024-05-11T09:00"},
		{ID: "f4", StudentName: "Undated"},
	}
	svc := fixedScheduleService(forms, blockedSnapshot(), time.Now())

	items, err := svc.DayView(context.Background(), models.NewDate(2024, time.May, 10))
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]SessionListItem{}
	for _, item := range items {
		byID[item.ID] = item
	}

	first := byID["f1"]
	assert.Equal(t, "2:30 PM", first.Time)
	assert.Equal(t, models.LabelWalkIn, first.Label)
	assert.Equal(t, models.StatusConfirmed, first.Status)

	second := byID["f2"]
	assert.Equal(t, models.LabelFollowUp, second.Label)
	assert.Equal(t, models.StatusPending, second.Status, "missing status defaults to pending")
}

func TestScheduleServiceDayViewEmpty(t *testing.T) {
	svc := fixedScheduleService(nil, blockedSnapshot(), time.Now())
	items, err := svc.DayView(context.Background(), models.NewDate(2024, time.May, 10))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestScheduleServiceWrapsReaderErrors(t *testing.T) {
	svc := NewScheduleService(formReaderStub{err: errors.New("db down")}, snapshotStub{}, nil)
	_, err := svc.DayView(context.Background(), models.NewDate(2024, time.May, 10))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
