package models

import "time"

// GuardianRecord is a parent/guardian on file, linked to one or more
// students through its guardian_id.
type GuardianRecord struct {
	GuardianID   string       `json:"guardian_id"`
	FullName     string       `json:"full_name"`
	Contact      string       `json:"contact"`
	NIN          string       `json:"nin"`
	Email        *string      `json:"email,omitempty"`
	Photo        *string      `json:"photo,omitempty"`
	Relationship Relationship `json:"relationship"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CreateGuardianDTO is the payload for registering a guardian directly
// through POST /guardians.
type CreateGuardianDTO struct {
	GuardianID   string       `json:"guardian_id"`
	FullName     string       `json:"full_name" validate:"required"`
	Contact      string       `json:"contact" validate:"required"`
	NIN          string       `json:"nin" validate:"required"`
	Email        string       `json:"email"`
	Photo        string       `json:"photo"`
	Relationship Relationship `json:"relationship" validate:"required,oneof=Mother Father Guardian Sibling Relative Other"`
}
