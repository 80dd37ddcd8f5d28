package database

import (
	"database/sql"

	"github.com/dementa/mjs/app/models"
)

const interviewColumns = `id, first_name, last_name, other_names, previous_school, section,
	class_name, subject, score, aggregate, status, admission_status, issued_by, feedback, created_at`

func scanInterview(row interface {
	Scan(dest ...interface{}) error
}) (*models.Interview, error) {
	iv := &models.Interview{}
	var score sql.NullFloat64
	var aggregate, feedback sql.NullString

	err := row.Scan(
		&iv.ID, &iv.FirstName, &iv.LastName, &iv.OtherNames, &iv.PreviousSchool, &iv.Section,
		&iv.Class, &iv.Subject, &score, &aggregate, &iv.Status, &iv.AdmissionStatus,
		&iv.IssuedBy, &feedback, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if score.Valid {
		iv.Score = &score.Float64
	}
	if aggregate.Valid {
		iv.Aggregate = &aggregate.String
	}
	if feedback.Valid {
		iv.Feedback = &feedback.String
	}
	return iv, nil
}

// GetInterviews returns all interviews, newest first, optionally filtered
// by admission queue status.
func GetInterviews(db *sql.DB, admissionStatus string) ([]*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews`
	args := []interface{}{}
	if admissionStatus != "" {
		query += ` WHERE admission_status = $1`
		args = append(args, admissionStatus)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []*models.Interview
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func GetInterviewByID(db *sql.DB, id string) (*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	return scanInterview(db.QueryRow(query, id))
}

// CreateInterview inserts a new interview record. ID and created_at are
// assigned by the database.
func CreateInterview(db *sql.DB, iv *models.Interview) error {
	query := `
		INSERT INTO interviews (first_name, last_name, other_names, previous_school, section,
			class_name, subject, score, aggregate, status, admission_status, issued_by, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	return db.QueryRow(query,
		iv.FirstName, iv.LastName, iv.OtherNames, iv.PreviousSchool, iv.Section,
		iv.Class, iv.Subject, iv.Score, iv.Aggregate, iv.Status, iv.AdmissionStatus,
		iv.IssuedBy, iv.Feedback,
	).Scan(&iv.ID, &iv.CreatedAt)
}

// UpdateInterview writes the full record back. Partial updates load the
// record, apply changes in the workflow layer, then call this.
func UpdateInterview(db *sql.DB, iv *models.Interview) error {
	query := `
		UPDATE interviews
		SET first_name = $1, last_name = $2, other_names = $3, previous_school = $4,
			section = $5, class_name = $6, subject = $7, score = $8, aggregate = $9,
			status = $10, admission_status = $11, issued_by = $12, feedback = $13
		WHERE id = $14`

	result, err := db.Exec(query,
		iv.FirstName, iv.LastName, iv.OtherNames, iv.PreviousSchool,
		iv.Section, iv.Class, iv.Subject, iv.Score, iv.Aggregate,
		iv.Status, iv.AdmissionStatus, iv.IssuedBy, iv.Feedback, iv.ID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteInterview(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
