package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

type formReader interface {
	ListAll(ctx context.Context) ([]models.InterviewForm, error)
}

type snapshotProvider interface {
	Snapshot(ctx context.Context) (models.AvailabilitySnapshot, error)
}

// ScheduleService composes the staff-facing calendar: the annotated month
// grid and the per-day session listings.
type ScheduleService struct {
	forms        formReader
	availability snapshotProvider
	logger       *zap.Logger
	now          func() time.Time
}

// NewScheduleService constructs the service.
func NewScheduleService(forms formReader, availability snapshotProvider, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{forms: forms, availability: availability, logger: logger, now: time.Now}
}

// SessionListItem is one resolved session shown for a day.
type SessionListItem struct {
	ID                string `json:"id"`
	StudentName       string `json:"studentName"`
	CourseYearSection string `json:"courseYearSection,omitempty"`
	Time              string `json:"time"`
	Label             string `json:"label"`
	Status            string `json:"status"`
	Remarks           string `json:"remarks,omitempty"`
	FollowUpDate      string `json:"followUpDate,omitempty"`
	SessionNotes      string `json:"sessionNotes,omitempty"`
}

// MonthView builds the annotated grid for the requested month. selected may
// be zero when no day is highlighted.
func (s *ScheduleService) MonthView(ctx context.Context, year int, month time.Month, selected models.Date) (models.MonthView, error) {
	snapshot, err := s.availability.Snapshot(ctx)
	if err != nil {
		return models.MonthView{}, err
	}

	sessionDays, err := s.sessionDays(ctx)
	if err != nil {
		return models.MonthView{}, err
	}

	today := models.DateOf(s.now())
	return BuildMonthView(year, month, today, selected, snapshot, sessionDays), nil
}

// DayView lists the sessions whose effective date is the requested day.
func (s *ScheduleService) DayView(ctx context.Context, day models.Date) ([]SessionListItem, error) {
	forms, err := s.forms.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch sessions")
	}

	items := make([]SessionListItem, 0)
	for _, form := range forms {
		effective, ok := ResolveSessionDate(form)
		if !ok || !effective.Equal(day) {
			continue
		}
		status := form.Status
		if status == "" {
			status = models.StatusPending
		}
		items = append(items, SessionListItem{
			ID:                form.ID,
			StudentName:       form.StudentName,
			CourseYearSection: form.CourseYearSection,
			Time:              SessionDisplayTime(form),
			Label:             SessionLabel(form, day),
			Status:            status,
			Remarks:           form.Remarks,
			FollowUpDate:      form.FollowUpDate,
			SessionNotes:      form.SessionNotes,
		})
	}
	return items, nil
}

// sessionDays resolves every form to its effective day. Undated forms are
// excluded entirely.
func (s *ScheduleService) sessionDays(ctx context.Context) (map[models.Date]struct{}, error) {
	forms, err := s.forms.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch sessions")
	}
	days := make(map[models.Date]struct{}, len(forms))
	for _, form := range forms {
		if day, ok := ResolveSessionDate(form); ok {
			days[day] = struct{}{}
		}
	}
	return days, nil
}
