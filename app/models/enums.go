package models

// Section groups classes by education level. The section chosen for a
// candidate constrains which class and subject values are valid.
type Section string

const (
	SectionDayCare    Section = "Day Care"
	SectionPrePrimary Section = "Pre-Primary"
	SectionPrimary    Section = "Primary"
)

// InterviewStatus defines the possible outcomes of a candidate interview.
// Pending means no score has been recorded yet.
type InterviewStatus string

const (
	InterviewPending InterviewStatus = "Pending"
	InterviewPassed  InterviewStatus = "Passed"
	InterviewFailed  InterviewStatus = "Failed"
)

// AdmissionStatus tracks a candidate through the admission queue. It is
// driven by staff action and progresses independently of the interview
// score outcome.
type AdmissionStatus string

const (
	AdmissionPending   AdmissionStatus = "pending"
	AdmissionReady     AdmissionStatus = "ready"
	AdmissionCompleted AdmissionStatus = "completed"
)

// Relationship defines how a guardian relates to a student.
type Relationship string

const (
	Mother   Relationship = "Mother"
	Father   Relationship = "Father"
	Guardian Relationship = "Guardian"
	Sibling  Relationship = "Sibling"
	Relative Relationship = "Relative"
	OtherRel Relationship = "Other"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male        Gender = "Male"
	Female      Gender = "Female"
	OtherGender Gender = "Other"
)
