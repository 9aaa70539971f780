package service

import (
	"time"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

// sessionTimeLayouts are tried in order when interpreting a raw timestamp
// field. The intake form composes minute-precision ISO strings; older records
// carry full RFC3339 instants or bare dates.
var sessionTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	models.DateLayout,
}

// ParseSessionTimestamp interprets a raw timestamp field. A missing or
// unparseable value reports ok=false; it is never an error, the field is
// simply treated as absent.
func ParseSessionTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range sessionTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveSessionDate maps an interview form to the single calendar day it
// occupies. Precedence, first match wins:
//
//  1. a follow-up remark with a parseable follow-up date places the session
//     on the follow-up day, superseding the originally scheduled slot
//  2. the scheduled dateTime (reschedules mutate this field in place)
//  3. the submission date as a last resort
//
// ok=false means the form carries no usable timestamp and is excluded from
// all calendar annotation.
func ResolveSessionDate(form models.InterviewForm) (models.Date, bool) {
	if form.Remarks == models.RemarkFollowUp {
		if t, ok := ParseSessionTimestamp(form.FollowUpDate); ok {
			return models.DateOf(t), true
		}
	}
	if t, ok := ParseSessionTimestamp(form.DateTime); ok {
		return models.DateOf(t), true
	}
	if t, ok := ParseSessionTimestamp(form.SubmissionDate); ok {
		return models.DateOf(t), true
	}
	return models.Date{}, false
}

// SessionLabel derives the display label for a session on the day being
// viewed: "Follow-up" when the follow-up rule placed it there, otherwise
// "Referral" for referral submissions, otherwise "Walk-in".
func SessionLabel(form models.InterviewForm, viewedDay models.Date) string {
	if form.Remarks == models.RemarkFollowUp {
		if t, ok := ParseSessionTimestamp(form.FollowUpDate); ok && models.DateOf(t).Equal(viewedDay) {
			return models.LabelFollowUp
		}
	}
	if form.IsReferral || form.Type == models.TypeReferral {
		return models.LabelReferral
	}
	return models.LabelWalkIn
}

// SessionDisplayTime formats the clock time shown next to a session entry,
// preferring the scheduled slot over the submission instant.
func SessionDisplayTime(form models.InterviewForm) string {
	if t, ok := ParseSessionTimestamp(form.DateTime); ok {
		return t.Format("3:04 PM")
	}
	if t, ok := ParseSessionTimestamp(form.SubmissionDate); ok {
		return t.Format("3:04 PM")
	}
	return "Time not specified"
}
