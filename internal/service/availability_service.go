package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
	appErrors "github.com/Ralph-Dulla-23/CMS/pkg/errors"
)

const unavailableDatesCacheKey = "availability:unavailable-dates"

type availabilityRepository interface {
	List(ctx context.Context) ([]models.UnavailableDateRecord, error)
	Add(ctx context.Context, dates []models.Date, reason string) error
	Remove(ctx context.Context, dates []models.Date) error
}

// AvailabilityService is the authoritative store of dates blocked from
// booking. Mutations round-trip through the persistence collaborator and
// re-list before the view is considered consistent.
type AvailabilityService struct {
	repo   availabilityRepository
	cache  *CacheService
	logger *zap.Logger
}

// NewAvailabilityService constructs the service.
func NewAvailabilityService(repo availabilityRepository, cache *CacheService, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{repo: repo, cache: cache, logger: logger}
}

// MarkUnavailableRequest is the batch payload for blocking dates. One reason
// is shared across the whole batch.
type MarkUnavailableRequest struct {
	Dates  []models.Date `json:"dates"`
	Reason string        `json:"reason"`
}

// RemoveUnavailableRequest is the batch payload for unblocking dates.
type RemoveUnavailableRequest struct {
	Dates []models.Date `json:"dates"`
}

// List returns the current blocked dates. Records whose date string fails to
// parse are dropped from the view; the anomaly is logged, never surfaced.
func (s *AvailabilityService) List(ctx context.Context) ([]models.UnavailableDate, error) {
	var cached []models.UnavailableDate
	if hit, _ := s.cache.Get(ctx, unavailableDatesCacheKey, &cached); hit {
		return cached, nil
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to fetch unavailable dates")
	}

	entries := make([]models.UnavailableDate, 0, len(records))
	for _, rec := range records {
		day, err := models.ParseDate(rec.Date)
		if err != nil {
			s.logger.Warn("dropping unavailable date with unparseable value",
				zap.String("id", rec.ID), zap.String("raw", rec.Date), zap.Error(err))
			continue
		}
		entries = append(entries, models.UnavailableDate{
			ID:        rec.ID,
			Date:      day,
			Reason:    rec.Reason,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}

	s.cache.Set(ctx, unavailableDatesCacheKey, entries)
	return entries, nil
}

// Snapshot returns the current blocked-date set keyed by day, for the grid
// builder and booking validator.
func (s *AvailabilityService) Snapshot(ctx context.Context) (models.AvailabilitySnapshot, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return models.AvailabilitySnapshot{}, err
	}
	return models.NewAvailabilitySnapshot(entries), nil
}

// Add blocks the batch of dates with one shared reason. An empty batch is
// rejected before any collaborator call. On success the refreshed list is
// returned; the add itself never stands in for final state.
func (s *AvailabilityService) Add(ctx context.Context, req MarkUnavailableRequest) ([]models.UnavailableDate, error) {
	if len(req.Dates) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one date is required")
	}
	if err := s.repo.Add(ctx, req.Dates, req.Reason); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to mark dates as unavailable")
	}
	s.cache.Invalidate(ctx, unavailableDatesCacheKey)
	return s.List(ctx)
}

// Remove unblocks the batch of dates. Dates not currently blocked are a
// successful no-op. Same refresh discipline as Add.
func (s *AvailabilityService) Remove(ctx context.Context, req RemoveUnavailableRequest) ([]models.UnavailableDate, error) {
	if len(req.Dates) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "at least one date is required")
	}
	if err := s.repo.Remove(ctx, req.Dates); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to remove unavailable dates")
	}
	s.cache.Invalidate(ctx, unavailableDatesCacheKey)
	return s.List(ctx)
}
