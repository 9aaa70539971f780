package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ralph-Dulla-23/CMS/internal/models"
)

var formRowColumns = []string{
	"id", "student_name", "email", "consent_given", "date_time", "submission_date", "follow_up_date",
	"date_of_birth", "contact_no", "course_year_section", "age_sex", "present_address",
	"emergency_contact_person", "emergency_contact_no",
	"self_description", "important_things", "friends", "class_participation", "family",
	"comfortable_confidant", "additional_comments", "areas_of_concern",
	"is_referral", "type", "referred_by", "status", "remarks", "session_notes", "created_at", "updated_at",
}

func formRow(id, name string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, name, "", true, "2024-05-10T14:30", "2024-05-01T08:00:00Z", "",
		"", "", "BSIT 2-1", "", "",
		"", "",
		"", "", "", "", "",
		"", "", []byte(`{}`),
		false, "", "", "Pending", "", "", now, now,
	}
}

func TestFormRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	rows := sqlmock.NewRows(formRowColumns).AddRow(formRow("f1", "Jamie Cruz")...)
	mock.ExpectQuery(regexp.QuoteMeta("FROM interview_forms WHERE 1=1 AND status = $1 ORDER BY created_at DESC LIMIT 50 OFFSET 0")).
		WithArgs("Pending").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM interview_forms WHERE 1=1 AND status = $1")).
		WithArgs("Pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	forms, total, err := repo.List(context.Background(), models.FormFilter{Status: "Pending"})
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Jamie Cruz", forms[0].StudentName)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	rows := sqlmock.NewRows(formRowColumns).
		AddRow(formRow("f1", "Jamie Cruz")...).
		AddRow(formRow("f2", "Sam Reyes")...)
	mock.ExpectQuery(regexp.QuoteMeta("FROM interview_forms ORDER BY created_at DESC")).
		WillReturnRows(rows)

	forms, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, forms, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	rows := sqlmock.NewRows(formRowColumns).AddRow(formRow("f1", "Jamie Cruz")...)
	mock.ExpectQuery(regexp.QuoteMeta("FROM interview_forms WHERE id = $1")).
		WithArgs("f1").
		WillReturnRows(rows)

	form, err := repo.GetByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1", form.ID)
	assert.Equal(t, "BSIT 2-1", form.CourseYearSection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	mock.ExpectExec("INSERT INTO interview_forms").
		WillReturnResult(sqlmock.NewResult(1, 1))

	form := &models.InterviewForm{StudentName: "Jamie Cruz", ConsentGiven: true, Status: "Pending"}
	require.NoError(t, repo.Create(context.Background(), form))
	assert.NotEmpty(t, form.ID)
	assert.False(t, form.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	followUp := "2024-05-20"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE interview_forms SET status = $2, remarks = $3, updated_at = $4, follow_up_date = $5 WHERE id = $1")).
		WithArgs("f1", "Confirmed", "Follow up", sqlmock.AnyArg(), followUp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "f1", "Confirmed", "Follow up", nil, &followUp)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepositoryUpdateStatusNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFormRepository(db)

	mock.ExpectExec("UPDATE interview_forms SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", "Confirmed", "", nil, nil)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
