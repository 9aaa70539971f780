package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

type formRepository interface {
	List(ctx context.Context, filter models.FormFilter) ([]models.InterviewForm, int, error)
	GetByID(ctx context.Context, id string) (*models.InterviewForm, error)
	Create(ctx context.Context, form *models.InterviewForm) error
	UpdateStatus(ctx context.Context, id, status, remarks string, dateTime, followUpDate *string) error
}

// IntakeService handles student interview form submission and the staff-side
// status workflow.
type IntakeService struct {
	repo         formRepository
	availability snapshotProvider
	validator    *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// NewIntakeService constructs the service.
func NewIntakeService(repo formRepository, availability snapshotProvider, validate *validator.Validate, logger *zap.Logger) *IntakeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{repo: repo, availability: availability, validator: validate, logger: logger, now: time.Now}
}

// SubmitFormRequest is the student intake payload.
type SubmitFormRequest struct {
	ConsentGiven bool   `json:"consentGiven" validate:"required"`
	StudentName  string `json:"studentName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	DateTime     string `json:"dateTime" validate:"required"`

	DateOfBirth            string `json:"dateOfBirth"`
	ContactNo              string `json:"contactNo"`
	CourseYearSection      string `json:"courseYearSection"`
	AgeSex                 string `json:"ageSex"`
	PresentAddress         string `json:"presentAddress"`
	EmergencyContactPerson string `json:"emergencyContactPerson"`
	EmergencyContactNo     string `json:"emergencyContactNo"`

	SelfDescription      string `json:"selfDescription"`
	ImportantThings      string `json:"importantThings"`
	Friends              string `json:"friends"`
	ClassParticipation   string `json:"classParticipation"`
	Family               string `json:"family"`
	ComfortableConfidant string `json:"comfortableConfidant"`
	AdditionalComments   string `json:"additionalComments"`

	AreasOfConcern models.AreasOfConcern `json:"areasOfConcern"`

	IsReferral bool   `json:"isReferral"`
	Type       string `json:"type"`
	ReferredBy string `json:"referredBy"`
}

// FormListRequest filters interview form listings.
type FormListRequest struct {
	Status     string
	IsReferral *bool
	Page       int
	PageSize   int
}

// UpdateFormStatusRequest is the staff status/remarks change. DateTime
// reschedules the session in place; FollowUpDate accompanies a follow-up
// remark.
type UpdateFormStatusRequest struct {
	Status       string  `json:"status" validate:"required"`
	Remarks      string  `json:"remarks"`
	DateTime     *string `json:"dateTime"`
	FollowUpDate *string `json:"followUpDate"`
}

var validStatuses = map[string]struct{}{
	models.StatusPending:     {},
	models.StatusConfirmed:   {},
	models.StatusCompleted:   {},
	models.StatusCancelled:   {},
	models.StatusNoShow:      {},
	models.StatusRescheduled: {},
	models.StatusReviewed:    {},
}

// Submit validates and persists a new interview form. The candidate date is
// re-validated through the same decision the picker uses, so a date that
// slipped past the UI is still rejected here.
func (s *IntakeService) Submit(ctx context.Context, req SubmitFormRequest) (*models.InterviewForm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	slot, ok := ParseSessionTimestamp(req.DateTime)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dateTime is not a valid timestamp")
	}

	snapshot, err := s.availability.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	today := models.DateOf(s.now())
	if !CanBook(models.DateOf(slot), today, snapshot) {
		return nil, appErrors.Clone(appErrors.ErrDateUnavailable, "the selected date is not available for counseling, please select another date")
	}

	form := &models.InterviewForm{
		StudentName:            req.StudentName,
		Email:                  req.Email,
		ConsentGiven:           req.ConsentGiven,
		DateTime:               req.DateTime,
		SubmissionDate:         s.now().UTC().Format(time.RFC3339),
		DateOfBirth:            req.DateOfBirth,
		ContactNo:              req.ContactNo,
		CourseYearSection:      req.CourseYearSection,
		AgeSex:                 req.AgeSex,
		PresentAddress:         req.PresentAddress,
		EmergencyContactPerson: req.EmergencyContactPerson,
		EmergencyContactNo:     req.EmergencyContactNo,
		SelfDescription:        req.SelfDescription,
		ImportantThings:        req.ImportantThings,
		Friends:                req.Friends,
		ClassParticipation:     req.ClassParticipation,
		Family:                 req.Family,
		ComfortableConfidant:   req.ComfortableConfidant,
		AdditionalComments:     req.AdditionalComments,
		AreasOfConcern:         req.AreasOfConcern,
		IsReferral:             req.IsReferral,
		Type:                   req.Type,
		ReferredBy:             req.ReferredBy,
		Status:                 models.StatusPending,
	}
	if err := s.repo.Create(ctx, form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to submit interview form")
	}
	return form, nil
}

// List returns interview forms with pagination.
func (s *IntakeService) List(ctx context.Context, req FormListRequest) ([]models.InterviewForm, *models.Pagination, error) {
	filter := models.FormFilter{
		Status:     req.Status,
		IsReferral: req.IsReferral,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	forms, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to list interview forms")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return forms, pagination, nil
}

// Get returns one interview form by id.
func (s *IntakeService) Get(ctx context.Context, id string) (*models.InterviewForm, error) {
	form, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "interview form not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to get interview form")
	}
	return form, nil
}

// UpdateStatus applies the staff workflow change and returns the refreshed
// form.
func (s *IntakeService) UpdateStatus(ctx context.Context, id string, req UpdateFormStatusRequest) (*models.InterviewForm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if _, ok := validStatuses[req.Status]; !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown session status")
	}
	if req.FollowUpDate != nil {
		if _, ok := ParseSessionTimestamp(*req.FollowUpDate); !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "followUpDate is not a valid timestamp")
		}
	}
	if req.DateTime != nil {
		if _, ok := ParseSessionTimestamp(*req.DateTime); !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "dateTime is not a valid timestamp")
		}
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, req.Status, req.Remarks, req.DateTime, req.FollowUpDate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to update session status")
	}
	return s.Get(ctx, id)
}
