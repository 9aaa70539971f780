package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Session statuses as managed on the submissions page. Pending is the default
// for new intake forms.
const (
	StatusPending     = "Pending"
	StatusConfirmed   = "Confirmed"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
	StatusNoShow      = "No-show"
	StatusRescheduled = "Rescheduled"
	StatusReviewed    = "Reviewed"
)

// RemarkFollowUp is the remarks value that flags a follow-up session. It is a
// semantic marker: a form carrying it is placed on its follow-up date instead
// of its originally scheduled day.
const RemarkFollowUp = "Follow up"

// Session type labels reported alongside each calendar entry.
const (
	LabelFollowUp = "Follow-up"
	LabelReferral = "Referral"
	LabelWalkIn   = "Walk-in"
)

// TypeReferral is the form type value that marks a referral submission.
const TypeReferral = "Referral"

// InterviewForm is a student counseling intake submission. The timestamp
// fields that drive calendar placement (DateTime, SubmissionDate,
// FollowUpDate) are stored as the raw strings the client supplied; the
// resolver owns their lenient interpretation.
type InterviewForm struct {
	ID           string `db:"id" json:"id"`
	StudentName  string `db:"student_name" json:"studentName"`
	Email        string `db:"email" json:"email,omitempty"`
	ConsentGiven bool   `db:"consent_given" json:"consentGiven"`

	DateTime       string `db:"date_time" json:"dateTime,omitempty"`
	SubmissionDate string `db:"submission_date" json:"submissionDate,omitempty"`
	FollowUpDate   string `db:"follow_up_date" json:"followUpDate,omitempty"`

	DateOfBirth            string `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	ContactNo              string `db:"contact_no" json:"contactNo,omitempty"`
	CourseYearSection      string `db:"course_year_section" json:"courseYearSection,omitempty"`
	AgeSex                 string `db:"age_sex" json:"ageSex,omitempty"`
	PresentAddress         string `db:"present_address" json:"presentAddress,omitempty"`
	EmergencyContactPerson string `db:"emergency_contact_person" json:"emergencyContactPerson,omitempty"`
	EmergencyContactNo     string `db:"emergency_contact_no" json:"emergencyContactNo,omitempty"`

	SelfDescription      string `db:"self_description" json:"selfDescription,omitempty"`
	ImportantThings      string `db:"important_things" json:"importantThings,omitempty"`
	Friends              string `db:"friends" json:"friends,omitempty"`
	ClassParticipation   string `db:"class_participation" json:"classParticipation,omitempty"`
	Family               string `db:"family" json:"family,omitempty"`
	ComfortableConfidant string `db:"comfortable_confidant" json:"comfortableConfidant,omitempty"`
	AdditionalComments   string `db:"additional_comments" json:"additionalComments,omitempty"`

	AreasOfConcern AreasOfConcern `db:"areas_of_concern" json:"areasOfConcern"`

	IsReferral   bool   `db:"is_referral" json:"isReferral"`
	Type         string `db:"type" json:"type,omitempty"`
	ReferredBy   string `db:"referred_by" json:"referredBy,omitempty"`
	Status       string `db:"status" json:"status"`
	Remarks      string `db:"remarks" json:"remarks,omitempty"`
	SessionNotes string `db:"session_notes" json:"sessionNotes,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AreasOfConcern holds the checkbox codes ticked per category. The codes stay
// opaque here; mapping them to display text is the UI's concern.
type AreasOfConcern struct {
	Personal      []string `json:"personal"`
	Interpersonal []string `json:"interpersonal"`
	Academic      []string `json:"academic"`
	Family        []string `json:"family"`
}

// Value marshals the concern codes to JSON for persistence.
func (a AreasOfConcern) Value() (driver.Value, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal areas of concern: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSONB payloads into the concern struct.
func (a *AreasOfConcern) Scan(value interface{}) error {
	if value == nil {
		*a = AreasOfConcern{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for AreasOfConcern", value)
	}
	if len(data) == 0 {
		*a = AreasOfConcern{}
		return nil
	}
	return json.Unmarshal(data, a)
}

// FormFilter narrows down interview form listings.
type FormFilter struct {
	Status     string
	IsReferral *bool
	Page       int
	PageSize   int
}
