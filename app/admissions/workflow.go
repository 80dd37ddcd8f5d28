package admissions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dementa/mjs/app/models"
)

var (
	ErrFeedbackRequired = errors.New("score updates require both a score and feedback")
	ErrScoreOutOfRange  = errors.New("score must be between 0 and 100")
)

// ValidateCatalog checks that an interview's class and subject belong to
// the catalog for its section. Runs before any database write.
func ValidateCatalog(section models.Section, class, subject string) error {
	if !ValidClass(section, class) {
		return fmt.Errorf("class %q is not valid for section %q", class, section)
	}
	if !ValidSubject(section, subject) {
		return fmt.Errorf("subject %q is not valid for section %q", subject, section)
	}
	return nil
}

// ApplyScore records a score on an interview and re-derives status and
// aggregate under the given strategy. Feedback is mandatory alongside a
// score; status is never taken from user input once a score exists.
func ApplyScore(iv *models.Interview, strategy Strategy, score float64, feedback string) error {
	if score < 0 || score > 100 {
		return ErrScoreOutOfRange
	}
	if strings.TrimSpace(feedback) == "" {
		return ErrFeedbackRequired
	}

	iv.Score = &score
	iv.Feedback = &feedback
	grade := GradeFor(strategy, score)
	if grade.Aggregate != "" {
		iv.Aggregate = &grade.Aggregate
	} else {
		iv.Aggregate = nil
	}
	iv.Status = StatusFor(strategy, iv.Score)
	return nil
}

// ClearScore returns an interview to the ungraded state. The only path
// back to Pending once a score has been recorded.
func ClearScore(iv *models.Interview) {
	iv.Score = nil
	iv.Aggregate = nil
	iv.Feedback = nil
	iv.Status = models.InterviewPending
}

// ChangeSection moves an interview to a new section and clears any class
// or subject choice the new section does not allow. The catalog itself
// never clears values; that is this workflow's job.
func ChangeSection(iv *models.Interview, section models.Section) {
	if iv.Section == section {
		return
	}
	iv.Section = section
	if !ValidClass(section, iv.Class) {
		iv.Class = ""
	}
	if !ValidSubject(section, iv.Subject) {
		iv.Subject = ""
	}
}

// admissionNext holds the only legal queue transitions. The queue moves
// forward one step at a time under staff action.
var admissionNext = map[models.AdmissionStatus]models.AdmissionStatus{
	models.AdmissionPending: models.AdmissionReady,
	models.AdmissionReady:   models.AdmissionCompleted,
}

// AdvanceAdmission moves a candidate one step through the admission queue.
// The queue is independent of the interview outcome: a Passed candidate
// may sit at pending until staff act.
func AdvanceAdmission(iv *models.Interview, next models.AdmissionStatus) error {
	if admissionNext[iv.AdmissionStatus] != next {
		return fmt.Errorf("cannot move admission status from %q to %q", iv.AdmissionStatus, next)
	}
	iv.AdmissionStatus = next
	return nil
}
