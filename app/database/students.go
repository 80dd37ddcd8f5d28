package database

import (
	"database/sql"

	"github.com/dementa/mjs/app/models"
)

func CreateStudent(db *sql.DB, s *models.Student) error {
	var guardian2 sql.NullString
	if s.Guardian2ID != nil {
		guardian2 = sql.NullString{String: *s.Guardian2ID, Valid: true}
	}

	query := `
		INSERT INTO students (registration_id, lin, payment_code, first_name, last_name, other_names,
			class_name, stream, gender, date_of_birth, religion, section, house, club,
			region, district, village, guardian1_id, guardian2_id, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING created_at`

	return db.QueryRow(query,
		s.RegistrationID, s.LIN, s.PaymentCode, s.Name.FirstName, s.Name.LastName, s.Name.OtherNames,
		s.Class.Name, s.Class.Stream, s.Gender, s.DateOfBirth, s.Religion, s.Section, s.House, s.Club,
		s.Residence.Region, s.Residence.District, s.Residence.Village,
		s.Guardian1ID, guardian2, s.Photo,
	).Scan(&s.CreatedAt)
}

func scanStudent(row interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	s := &models.Student{}
	var guardian2 sql.NullString

	err := row.Scan(
		&s.RegistrationID, &s.LIN, &s.PaymentCode, &s.Name.FirstName, &s.Name.LastName, &s.Name.OtherNames,
		&s.Class.Name, &s.Class.Stream, &s.Gender, &s.DateOfBirth, &s.Religion, &s.Section, &s.House, &s.Club,
		&s.Residence.Region, &s.Residence.District, &s.Residence.Village,
		&s.Guardian1ID, &guardian2, &s.Photo, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if guardian2.Valid {
		s.Guardian2ID = &guardian2.String
	}
	return s, nil
}

const studentColumns = `registration_id, lin, payment_code, first_name, last_name, other_names,
	class_name, stream, gender, date_of_birth, religion, section, house, club,
	region, district, village, guardian1_id, guardian2_id, photo, created_at`

func GetStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByRegistrationID(db *sql.DB, registrationID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE registration_id = $1`
	return scanStudent(db.QueryRow(query, registrationID))
}

func CountStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}
