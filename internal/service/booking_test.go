package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

func blockedSnapshot(days ...models.UnavailableDate) models.AvailabilitySnapshot {
	return models.NewAvailabilitySnapshot(days)
}

func TestCanBook(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	blocked := blockedSnapshot(models.UnavailableDate{Date: models.NewDate(2024, time.May, 15), Reason: "Staff training"})

	assert.False(t, CanBook(models.NewDate(2024, time.May, 9), today, blocked), "yesterday")
	assert.True(t, CanBook(today, today, blocked), "today is bookable")
	assert.True(t, CanBook(models.NewDate(2024, time.May, 11), today, blocked), "tomorrow")
	assert.False(t, CanBook(models.NewDate(2024, time.May, 15), today, blocked), "blocked day")
	assert.False(t, CanBook(models.NewDate(2023, time.May, 15), today, blocked), "previous year")
}

func TestDecideBookingReasons(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	blocked := blockedSnapshot(
		models.UnavailableDate{Date: models.NewDate(2024, time.May, 15), Reason: "Staff training"},
		models.UnavailableDate{Date: models.NewDate(2024, time.May, 16)},
	)

	ok := DecideBooking(models.NewDate(2024, time.May, 11), today, blocked)
	assert.True(t, ok.Bookable)
	assert.Empty(t, ok.Reason)

	past := DecideBooking(models.NewDate(2024, time.May, 1), today, blocked)
	assert.False(t, past.Bookable)
	assert.Equal(t, "date is in the past", past.Reason)

	withReason := DecideBooking(models.NewDate(2024, time.May, 15), today, blocked)
	assert.False(t, withReason.Bookable)
	assert.Equal(t, "Staff training", withReason.Reason)

	noReason := DecideBooking(models.NewDate(2024, time.May, 16), today, blocked)
	assert.False(t, noReason.Bookable)
	assert.Equal(t, "date is unavailable for counseling", noReason.Reason)
}
