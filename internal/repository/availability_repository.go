package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

// AvailabilityRepository persists the set of dates blocked from booking.
// The table is keyed by date: duplicate adds collapse into the existing row.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository constructs an availability repository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// List returns every blocked date ordered by day.
func (r *AvailabilityRepository) List(ctx context.Context) ([]models.UnavailableDateRecord, error) {
	const query = `SELECT id, to_char(date, 'YYYY-MM-DD') AS date, reason, created_at, updated_at
FROM unavailable_dates ORDER BY date ASC`
	var rows []models.UnavailableDateRecord
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list unavailable dates: %w", err)
	}
	return rows, nil
}

// Add inserts the batch of dates with one shared reason. Dates already in the
// store are left untouched, keeping at most one row per calendar day.
func (r *AvailabilityRepository) Add(ctx context.Context, dates []models.Date, reason string) error {
	ids := make([]string, len(dates))
	days := make([]string, len(dates))
	for i, d := range dates {
		ids[i] = uuid.NewString()
		days[i] = d.String()
	}
	now := time.Now().UTC()
	const query = `INSERT INTO unavailable_dates (id, date, reason, created_at, updated_at)
SELECT t.id, t.day, $3, $4, $4
FROM unnest($1::uuid[], $2::date[]) AS t(id, day)
ON CONFLICT (date) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids), pq.Array(days), reason, now); err != nil {
		return fmt.Errorf("add unavailable dates: %w", err)
	}
	return nil
}

// Remove deletes the batch of dates. Dates not present in the store match
// zero rows and the call still succeeds.
func (r *AvailabilityRepository) Remove(ctx context.Context, dates []models.Date) error {
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = d.String()
	}
	const query = `DELETE FROM unavailable_dates WHERE date = ANY($1::date[])`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(days)); err != nil {
		return fmt.Errorf("remove unavailable dates: %w", err)
	}
	return nil
}
