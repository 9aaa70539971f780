package service

import "github.com/Ralph-Dulla-23/CMS/internal/models"

// CanBook decides whether a candidate day is legal for a new booking: days
// strictly in the past are rejected (today itself is bookable) and days
// present in the availability snapshot are rejected. Both the interactive
// date picker and the final submission re-validation call this same function,
// so the two sites can never diverge.
func CanBook(candidate, today models.Date, snapshot models.AvailabilitySnapshot) bool {
	if candidate.Before(today) {
		return false
	}
	return !snapshot.IsUnavailable(candidate)
}

// BookingDecision is the date-check verdict returned to the picker.
type BookingDecision struct {
	Date     models.Date `json:"date"`
	Bookable bool        `json:"bookable"`
	Reason   string      `json:"reason,omitempty"`
}

// DecideBooking wraps CanBook with the human-readable reason the UI shows
// when a day is rejected.
func DecideBooking(candidate, today models.Date, snapshot models.AvailabilitySnapshot) BookingDecision {
	decision := BookingDecision{Date: candidate, Bookable: CanBook(candidate, today, snapshot)}
	if decision.Bookable {
		return decision
	}
	if candidate.Before(today) {
		decision.Reason = "date is in the past"
		return decision
	}
	if reason, ok := snapshot.Reason(candidate); ok && reason != "" {
		decision.Reason = reason
		return decision
	}
	decision.Reason = "date is unavailable for counseling"
	return decision
}
