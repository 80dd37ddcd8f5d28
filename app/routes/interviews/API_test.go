package interviews

import (
	"testing"

	"github.com/dementa/mjs/app/admissions"
	"github.com/dementa/mjs/app/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func sectionPtr(s models.Section) *models.Section { return &s }

func storedInterview() *models.Interview {
	return &models.Interview{
		ID:              "b2c4e7aa-1f7b-4a57-9d12-6a2b7f6e3c11",
		FirstName:       "AMINA",
		LastName:        "SSEKANDI",
		PreviousSchool:  "SUNRISE NURSERY",
		Section:         models.SectionPrimary,
		Class:           "Level 3",
		Subject:         "Mathematics",
		Status:          models.InterviewPending,
		AdmissionStatus: models.AdmissionPending,
		IssuedBy:        "Head Teacher",
	}
}

func TestApplyUpdateSectionChangeClearsChoices(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{Section: sectionPtr(models.SectionPrePrimary)}

	if err := applyUpdate(iv, dto); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if iv.Class != "" || iv.Subject != "" {
		t.Errorf("class=%q subject=%q, want both cleared after section change", iv.Class, iv.Subject)
	}
}

func TestApplyUpdateSectionChangeWithNewChoices(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{
		Section: sectionPtr(models.SectionPrePrimary),
		Class:   strPtr("Pre A"),
		Subject: strPtr("Oral"),
	}

	if err := applyUpdate(iv, dto); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if iv.Class != "Pre A" || iv.Subject != "Oral" {
		t.Errorf("class=%q subject=%q", iv.Class, iv.Subject)
	}
}

func TestApplyUpdateRejectsStaleClass(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{
		Section: sectionPtr(models.SectionPrePrimary),
		Class:   strPtr("Level 3"),
	}

	if err := applyUpdate(iv, dto); err == nil {
		t.Error("Level 3 under Pre-Primary must be rejected")
	}
}

func TestApplyUpdateScoreRequiresFeedback(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{Score: floatPtr(72)}

	if err := applyUpdate(iv, dto); err != admissions.ErrFeedbackRequired {
		t.Errorf("err = %v, want ErrFeedbackRequired", err)
	}
	if iv.Score != nil || iv.Status != models.InterviewPending {
		t.Error("record must stay untouched when the score update is invalid")
	}
}

func TestApplyUpdateScoreGradesBandedByDefault(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{
		Score:    floatPtr(92),
		Feedback: strPtr("excellent reading and numeracy"),
	}

	if err := applyUpdate(iv, dto); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if iv.Status != models.InterviewPassed {
		t.Errorf("status = %q, want Passed", iv.Status)
	}
	if iv.Aggregate == nil || *iv.Aggregate != "D1" {
		t.Errorf("aggregate = %v, want D1", iv.Aggregate)
	}
}

func TestApplyUpdateScoreBinaryWhenSelected(t *testing.T) {
	iv := storedInterview()
	dto := &models.UpdateInterviewDTO{
		Score:    floatPtr(40),
		Feedback: strPtr("needs support"),
		Grading:  "binary",
	}

	if err := applyUpdate(iv, dto); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}
	if iv.Status != models.InterviewFailed {
		t.Errorf("status = %q, want Failed", iv.Status)
	}
	if iv.Aggregate != nil {
		t.Errorf("aggregate = %q, want none under binary grading", *iv.Aggregate)
	}
}
