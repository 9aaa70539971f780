package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

func TestParseSessionTimestampLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-05-10T14:30:00Z", time.Date(2024, time.May, 10, 14, 30, 0, 0, time.UTC)},
		{"2024-05-10T14:30:00", time.Date(2024, time.May, 10, 14, 30, 0, 0, time.UTC)},
		{"2024-05-10T14:30", time.Date(2024, time.May, 10, 14, 30, 0, 0, time.UTC)},
		{"2024-05-10", time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		parsed, ok := ParseSessionTimestamp(tc.raw)
		require.True(t, ok, "expected %q to parse", tc.raw)
		assert.True(t, parsed.Equal(tc.want), "parsed %q to %v", tc.raw, parsed)
	}
}

func TestParseSessionTimestampRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "soon", "10/05/2024", "2024-13-40"} {
		_, ok := ParseSessionTimestamp(raw)
		assert.False(t, ok, "expected %q to be treated as absent", raw)
	}
}

func TestResolveSessionDateFollowUpWins(t *testing.T) {
	form := models.InterviewForm{
		Remarks:        models.RemarkFollowUp,
		FollowUpDate:   "2024-05-20",
		DateTime:       "2024-05-10T09:00",
		SubmissionDate: "2024-05-01T08:00:00Z",
	}
	day, ok := ResolveSessionDate(form)
	require.True(t, ok)
	assert.Equal(t, models.NewDate(2024, time.May, 20), day)
}

func TestResolveSessionDateFollowUpRemarkAlone(t *testing.T) {
	// The remark without a usable follow-up date falls through to dateTime.
	form := models.InterviewForm{
		Remarks:  models.RemarkFollowUp,
		DateTime: "2024-05-10T09:00",
	}
	day, ok := ResolveSessionDate(form)
	require.True(t, ok)
	assert.Equal(t, models.NewDate(2024, time.May, 10), day)
}

func TestResolveSessionDateFollowUpDateAlone(t *testing.T) {
	// A follow-up date without the remark does not move the session.
	form := models.InterviewForm{
		FollowUpDate: "2024-05-20",
		DateTime:     "2024-05-10T09:00",
	}
	day, ok := ResolveSessionDate(form)
	require.True(t, ok)
	assert.Equal(t, models.NewDate(2024, time.May, 10), day)
}

func TestResolveSessionDatePrefersDateTimeOverSubmission(t *testing.T) {
	form := models.InterviewForm{
		DateTime:       "2024-05-10T09:00",
		SubmissionDate: "2024-05-01T08:00:00Z",
	}
	day, ok := ResolveSessionDate(form)
	require.True(t, ok)
	assert.Equal(t, models.NewDate(2024, time.May, 10), day)
}

func TestResolveSessionDateFallsBackToSubmission(t *testing.T) {
	form := models.InterviewForm{
		DateTime:       "whenever works",
		SubmissionDate: "2024-05-01T08:00:00Z",
	}
	day, ok := ResolveSessionDate(form)
	require.True(t, ok)
	assert.Equal(t, models.NewDate(2024, time.May, 1), day)
}

func TestResolveSessionDateUndated(t *testing.T) {
	_, ok := ResolveSessionDate(models.InterviewForm{})
	assert.False(t, ok)

	_, ok = ResolveSessionDate(models.InterviewForm{DateTime: "tbd", SubmissionDate: "unknown"})
	assert.False(t, ok)
}

func TestSessionLabel(t *testing.T) {
	day := models.NewDate(2024, time.May, 20)

	followUp := models.InterviewForm{
		Remarks:      models.RemarkFollowUp,
		FollowUpDate: "2024-05-20",
		IsReferral:   true,
	}
	assert.Equal(t, models.LabelFollowUp, SessionLabel(followUp, day))

	// Viewed on a different day the follow-up rule does not apply.
	assert.Equal(t, models.LabelReferral, SessionLabel(followUp, models.NewDate(2024, time.May, 10)))

	referral := models.InterviewForm{IsReferral: true}
	assert.Equal(t, models.LabelReferral, SessionLabel(referral, day))

	typed := models.InterviewForm{Type: models.TypeReferral}
	assert.Equal(t, models.LabelReferral, SessionLabel(typed, day))

	walkIn := models.InterviewForm{}
	assert.Equal(t, models.LabelWalkIn, SessionLabel(walkIn, day))
}

func TestSessionDisplayTime(t *testing.T) {
	assert.Equal(t, "2:30 PM", SessionDisplayTime(models.InterviewForm{DateTime: "2024-05-10T14:30"}))
	assert.Equal(t, "8:00 AM", SessionDisplayTime(models.InterviewForm{SubmissionDate: "2024-05-01T08:00:00Z"}))
	assert.Equal(t, "Time not specified", SessionDisplayTime(models.InterviewForm{DateTime: "tbd"}))
}
