package admissions

import (
	"testing"

	"github.com/dementa/mjs/app/models"
)

func newPendingInterview() *models.Interview {
	return &models.Interview{
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

func TestApplyScoreDerivesStatus(t *testing.T) {
	tests := []struct {
		name       string
		strategy   Strategy
		score      float64
		wantStatus models.InterviewStatus
		wantAgg    string
	}{
		{"binary high score passes", Binary, 92, models.InterviewPassed, ""},
		{"binary low score fails", Binary, 40, models.InterviewFailed, ""},
		{"banded high score is D1", Banded, 92, models.InterviewPassed, "D1"},
		{"banded 40 is P8 and fails", Banded, 40, models.InterviewFailed, "P8"},
		{"banded 45 is C6 and passes", Banded, 45, models.InterviewPassed, "C6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := newPendingInterview()
			if iv.Status != models.InterviewPending {
				t.Fatalf("status before scoring = %q, want Pending", iv.Status)
			}
			if err := ApplyScore(iv, tt.strategy, tt.score, "confident candidate"); err != nil {
				t.Fatalf("ApplyScore: %v", err)
			}
			if iv.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", iv.Status, tt.wantStatus)
			}
			if iv.Status == models.InterviewPending {
				t.Error("status must never be Pending after a score is recorded")
			}
			if tt.wantAgg == "" && iv.Aggregate != nil {
				t.Errorf("aggregate = %q, want none", *iv.Aggregate)
			}
			if tt.wantAgg != "" && (iv.Aggregate == nil || *iv.Aggregate != tt.wantAgg) {
				t.Errorf("aggregate = %v, want %q", iv.Aggregate, tt.wantAgg)
			}
		})
	}
}

func TestApplyScoreValidation(t *testing.T) {
	iv := newPendingInterview()
	if err := ApplyScore(iv, Binary, 80, "  "); err != ErrFeedbackRequired {
		t.Errorf("blank feedback: err = %v, want ErrFeedbackRequired", err)
	}
	if err := ApplyScore(iv, Binary, 101, "fine"); err != ErrScoreOutOfRange {
		t.Errorf("score 101: err = %v, want ErrScoreOutOfRange", err)
	}
	if err := ApplyScore(iv, Binary, -1, "fine"); err != ErrScoreOutOfRange {
		t.Errorf("score -1: err = %v, want ErrScoreOutOfRange", err)
	}
	if iv.Score != nil || iv.Status != models.InterviewPending {
		t.Error("failed ApplyScore must leave the record untouched")
	}
}

func TestClearScore(t *testing.T) {
	iv := newPendingInterview()
	if err := ApplyScore(iv, Banded, 62, "steady"); err != nil {
		t.Fatal(err)
	}
	ClearScore(iv)
	if iv.Score != nil || iv.Aggregate != nil || iv.Feedback != nil {
		t.Error("ClearScore must drop score, aggregate and feedback")
	}
	if iv.Status != models.InterviewPending {
		t.Errorf("status after ClearScore = %q, want Pending", iv.Status)
	}
}

// Section changed from Primary to Pre-Primary after Level 3 was chosen:
// class and subject must reset before the record can be resubmitted.
func TestChangeSectionClearsStaleChoices(t *testing.T) {
	iv := newPendingInterview()
	ChangeSection(iv, models.SectionPrePrimary)
	if iv.Class != "" {
		t.Errorf("class = %q, want cleared", iv.Class)
	}
	if iv.Subject != "" {
		t.Errorf("subject = %q, want cleared", iv.Subject)
	}

	// Same section is a no-op.
	iv = newPendingInterview()
	ChangeSection(iv, models.SectionPrimary)
	if iv.Class != "Level 3" || iv.Subject != "Mathematics" {
		t.Error("changing to the same section must keep choices")
	}
}

func TestAdvanceAdmission(t *testing.T) {
	iv := newPendingInterview()

	if err := AdvanceAdmission(iv, models.AdmissionCompleted); err == nil {
		t.Error("pending -> completed must be rejected")
	}
	if err := AdvanceAdmission(iv, models.AdmissionReady); err != nil {
		t.Fatalf("pending -> ready: %v", err)
	}
	if err := AdvanceAdmission(iv, models.AdmissionReady); err == nil {
		t.Error("ready -> ready must be rejected")
	}
	if err := AdvanceAdmission(iv, models.AdmissionPending); err == nil {
		t.Error("queue never moves backwards")
	}
	if err := AdvanceAdmission(iv, models.AdmissionCompleted); err != nil {
		t.Fatalf("ready -> completed: %v", err)
	}
	if err := AdvanceAdmission(iv, models.AdmissionReady); err == nil {
		t.Error("completed is terminal")
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(models.SectionPrimary, "Level 3", "Mathematics"); err != nil {
		t.Errorf("valid combination rejected: %v", err)
	}
	if err := ValidateCatalog(models.SectionPrePrimary, "Level 3", "Oral"); err == nil {
		t.Error("Level 3 under Pre-Primary must be rejected")
	}
	if err := ValidateCatalog(models.SectionPrimary, "Level 3", "Oral"); err == nil {
		t.Error("Oral under Primary must be rejected")
	}
}
