package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

const formColumns = `id, student_name, email, consent_given, date_time, submission_date, follow_up_date,
date_of_birth, contact_no, course_year_section, age_sex, present_address,
emergency_contact_person, emergency_contact_no,
self_description, important_things, friends, class_participation, family,
comfortable_confidant, additional_comments, areas_of_concern,
is_referral, type, referred_by, status, remarks, session_notes, created_at, updated_at`

// FormRepository persists student interview forms.
type FormRepository struct {
	db *sqlx.DB
}

// NewFormRepository constructs a form repository.
func NewFormRepository(db *sqlx.DB) *FormRepository {
	return &FormRepository{db: db}
}

// List returns interview forms matching filters with a total count.
func (r *FormRepository) List(ctx context.Context, filter models.FormFilter) ([]models.InterviewForm, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.IsReferral != nil {
		where = append(where, fmt.Sprintf("is_referral = $%d", len(args)+1))
		args = append(args, *filter.IsReferral)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT %s FROM interview_forms WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		formColumns, whereClause, size, offset)
	var forms []models.InterviewForm
	if err := r.db.SelectContext(ctx, &forms, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list interview forms: %w", err)
	}
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM interview_forms WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count interview forms: %w", err)
	}
	return forms, total, nil
}

// ListAll returns every interview form. The schedule view resolves and
// filters in memory, matching the collaborator's fetch-everything contract.
func (r *FormRepository) ListAll(ctx context.Context) ([]models.InterviewForm, error) {
	query := fmt.Sprintf("SELECT %s FROM interview_forms ORDER BY created_at DESC", formColumns)
	var forms []models.InterviewForm
	if err := r.db.SelectContext(ctx, &forms, query); err != nil {
		return nil, fmt.Errorf("list all interview forms: %w", err)
	}
	return forms, nil
}

// GetByID fetches a single interview form.
func (r *FormRepository) GetByID(ctx context.Context, id string) (*models.InterviewForm, error) {
	query := fmt.Sprintf("SELECT %s FROM interview_forms WHERE id = $1", formColumns)
	var form models.InterviewForm
	if err := r.db.GetContext(ctx, &form, query, id); err != nil {
		return nil, err
	}
	return &form, nil
}

// Create inserts an interview form.
func (r *FormRepository) Create(ctx context.Context, form *models.InterviewForm) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if form.CreatedAt.IsZero() {
		form.CreatedAt = now
	}
	form.UpdatedAt = now
	const query = `INSERT INTO interview_forms (id, student_name, email, consent_given, date_time, submission_date, follow_up_date,
date_of_birth, contact_no, course_year_section, age_sex, present_address,
emergency_contact_person, emergency_contact_no,
self_description, important_things, friends, class_participation, family,
comfortable_confidant, additional_comments, areas_of_concern,
is_referral, type, referred_by, status, remarks, session_notes, created_at, updated_at)
VALUES (:id, :student_name, :email, :consent_given, :date_time, :submission_date, :follow_up_date,
:date_of_birth, :contact_no, :course_year_section, :age_sex, :present_address,
:emergency_contact_person, :emergency_contact_no,
:self_description, :important_things, :friends, :class_participation, :family,
:comfortable_confidant, :additional_comments, :areas_of_concern,
:is_referral, :type, :referred_by, :status, :remarks, :session_notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, form); err != nil {
		return fmt.Errorf("create interview form: %w", err)
	}
	return nil
}

// UpdateStatus applies a status/remarks change and, when supplied, new
// schedule fields. Rescheduling mutates date_time in place; a follow-up
// assignment sets follow_up_date alongside the remark.
func (r *FormRepository) UpdateStatus(ctx context.Context, id, status, remarks string, dateTime, followUpDate *string) error {
	set := []string{"status = $2", "remarks = $3", "updated_at = $4"}
	args := []interface{}{id, status, remarks, time.Now().UTC()}
	if dateTime != nil {
		set = append(set, fmt.Sprintf("date_time = $%d", len(args)+1))
		args = append(args, *dateTime)
	}
	if followUpDate != nil {
		set = append(set, fmt.Sprintf("follow_up_date = $%d", len(args)+1))
		args = append(args, *followUpDate)
	}
	query := fmt.Sprintf("UPDATE interview_forms SET %s WHERE id = $1", strings.Join(set, ", "))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update interview form status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("interview form %s: no rows updated", id)
	}
	return nil
}
