package database

import (
	"database/sql"

	"github.com/dementa/mjs/app/models"
)

func CreateGuardian(db *sql.DB, g *models.GuardianRecord) error {
	query := `
		INSERT INTO guardians (guardian_id, full_name, contact, nin, email, photo, relationship)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return db.QueryRow(query,
		g.GuardianID, g.FullName, g.Contact, g.NIN, g.Email, g.Photo, g.Relationship,
	).Scan(&g.CreatedAt)
}

func GetGuardianByID(db *sql.DB, guardianID string) (*models.GuardianRecord, error) {
	g := &models.GuardianRecord{}
	var email, photo sql.NullString

	query := `SELECT guardian_id, full_name, contact, nin, email, photo, relationship, created_at
			  FROM guardians WHERE guardian_id = $1`
	err := db.QueryRow(query, guardianID).Scan(
		&g.GuardianID, &g.FullName, &g.Contact, &g.NIN, &email, &photo, &g.Relationship, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		g.Email = &email.String
	}
	if photo.Valid {
		g.Photo = &photo.String
	}
	return g, nil
}

// GuardianStore adapts the guardians table to the admission resolver's
// directory interface.
type GuardianStore struct {
	DB *sql.DB
}

func (s *GuardianStore) Lookup(guardianID string) (*models.GuardianRecord, error) {
	return GetGuardianByID(s.DB, guardianID)
}

func (s *GuardianStore) Create(g *models.GuardianRecord) error {
	return CreateGuardian(s.DB, g)
}

func CountGuardians(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM guardians`).Scan(&count)
	return count, err
}
