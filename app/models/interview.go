package models

import "time"

// Interview represents one candidate's admission interview. Status is
// derived from the recorded score and is never accepted as direct input
// once a score exists.
type Interview struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	OtherNames      string          `json:"otherNames,omitempty"`
	PreviousSchool  string          `json:"previousSchool"`
	Section         Section         `json:"section"`
	Class           string          `json:"class"`
	Subject         string          `json:"subject"`
	Score           *float64        `json:"score,omitempty"`
	Aggregate       *string         `json:"aggregate,omitempty"`
	Status          InterviewStatus `json:"status"`
	AdmissionStatus AdmissionStatus `json:"admissionStatus"`
	IssuedBy        string          `json:"issuedBy"`
	Feedback        *string         `json:"feedback,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateInterviewDTO is the payload for issuing a new interview.
type CreateInterviewDTO struct {
	FirstName      string   `json:"firstName" validate:"required"`
	LastName       string   `json:"lastName" validate:"required"`
	OtherNames     string   `json:"otherNames"`
	PreviousSchool string   `json:"previousSchool" validate:"required"`
	Section        Section  `json:"section" validate:"required"`
	Class          string   `json:"class" validate:"required"`
	Subject        string   `json:"subject" validate:"required"`
	Score          *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	IssuedBy       string   `json:"issuedBy" validate:"required"`
	Feedback       string   `json:"feedback"`
	Grading        string   `json:"grading,omitempty" validate:"omitempty,oneof=binary banded"`
}

// UpdateInterviewDTO carries a whole-record update (PUT) or the changed
// fields of a partial update (PATCH). Status is intentionally absent:
// it is recomputed from the score on every write.
type UpdateInterviewDTO struct {
	ID             string   `json:"id"`
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	OtherNames     *string  `json:"otherNames,omitempty"`
	PreviousSchool *string  `json:"previousSchool,omitempty"`
	Section        *Section `json:"section,omitempty"`
	Class          *string  `json:"class,omitempty"`
	Subject        *string  `json:"subject,omitempty"`
	Score          *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=100"`
	IssuedBy       *string  `json:"issuedBy,omitempty"`
	Feedback       *string  `json:"feedback,omitempty"`
	Grading        string   `json:"grading,omitempty" validate:"omitempty,oneof=binary banded"`
}

// HasScoreUpdate reports whether the update records a new score.
func (dto *UpdateInterviewDTO) HasScoreUpdate() bool {
	return dto.Score != nil
}
