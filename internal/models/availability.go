package models

import "time"

// UnavailableDate is a calendar date blocked from new bookings by staff
// action, with an optional human-readable reason.
type UnavailableDate struct {
	ID        string    `db:"id" json:"id"`
	Date      Date      `db:"date" json:"date"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// UnavailableDateRecord is the persistence collaborator's wire shape for one
// blocked date: the date travels as a canonical YYYY-MM-DD string. Parsing it
// into a calendar day, and dropping records that fail, is the store's job.
type UnavailableDateRecord struct {
	ID        string    `db:"id"`
	Date      string    `db:"date"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AvailabilitySnapshot is a point-in-time view of the blocked dates, keyed by
// calendar day. Builders and validators take a snapshot as an argument rather
// than reading ambient state.
type AvailabilitySnapshot struct {
	reasons map[Date]string
}

// NewAvailabilitySnapshot indexes a list of store entries. Later entries for
// the same date win, matching the store's one-row-per-date invariant.
func NewAvailabilitySnapshot(entries []UnavailableDate) AvailabilitySnapshot {
	reasons := make(map[Date]string, len(entries))
	for _, e := range entries {
		reasons[e.Date] = e.Reason
	}
	return AvailabilitySnapshot{reasons: reasons}
}

// IsUnavailable reports whether the given day is blocked.
func (s AvailabilitySnapshot) IsUnavailable(day Date) bool {
	_, ok := s.reasons[day]
	return ok
}

// Reason returns the recorded reason for a blocked day, if any.
func (s AvailabilitySnapshot) Reason(day Date) (string, bool) {
	reason, ok := s.reasons[day]
	return reason, ok
}

// Len returns the number of blocked days in the snapshot.
func (s AvailabilitySnapshot) Len() int {
	return len(s.reasons)
}
