package models

import "time"

// StudentName holds the parts of a student's legal name.
type StudentName struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	OtherNames string `json:"other_names,omitempty"`
}

// StudentClass is the class placement chosen at registration.
type StudentClass struct {
	Name   string `json:"name" validate:"required"`
	Stream string `json:"stream,omitempty"`
}

// Residence is the student's home area. All fields are optional.
type Residence struct {
	Region   string `json:"region,omitempty"`
	District string `json:"district,omitempty"`
	Village  string `json:"village,omitempty"`
}

// Student is a fully registered learner. RegistrationID is generated at
// registration time in the MJS-YYMMDD-HHMMSS-NNN format.
type Student struct {
	RegistrationID string       `json:"registration_id"`
	LIN            string       `json:"LIN,omitempty"`
	PaymentCode    string       `json:"payment_code,omitempty"`
	Name           StudentName  `json:"name"`
	Class          StudentClass `json:"class"`
	Gender         Gender       `json:"gender"`
	DateOfBirth    string       `json:"date_of_birth"`
	Religion       string       `json:"religion,omitempty"`
	Section        Section      `json:"section"`
	House          string       `json:"house,omitempty"`
	Club           string       `json:"club,omitempty"`
	Residence      Residence    `json:"residence,omitempty"`
	Guardian1ID    string       `json:"guardian1_id"`
	Guardian2ID    *string      `json:"guardian2_id,omitempty"`
	Photo          string       `json:"photo,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CreateStudentDTO is the payload for POST /students. Guardian references
// must already exist; creating guardians is the registration flow's job.
type CreateStudentDTO struct {
	RegistrationID string       `json:"registration_id"`
	LIN            string       `json:"LIN"`
	PaymentCode    string       `json:"payment_code"`
	Name           StudentName  `json:"name" validate:"required"`
	Class          StudentClass `json:"class" validate:"required"`
	Gender         Gender       `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth    string       `json:"date_of_birth" validate:"required"`
	Religion       string       `json:"religion"`
	Section        Section      `json:"section" validate:"required"`
	House          string       `json:"house"`
	Club           string       `json:"club"`
	Residence      Residence    `json:"residence"`
	Guardian1ID    string       `json:"guardian1_id" validate:"required"`
	Guardian2ID    string       `json:"guardian2_id"`
	Photo          string       `json:"photo"`
}
