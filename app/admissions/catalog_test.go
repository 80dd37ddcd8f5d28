package admissions

import (
	"reflect"
	"testing"

	"github.com/dementa/mjs/app/models"
)

func TestClassesFor(t *testing.T) {
	tests := []struct {
		section models.Section
		want    []string
	}{
		{models.SectionDayCare, []string{"Infant", "Toddler", "Pre-Nursery"}},
		{models.SectionPrePrimary, []string{"Pre A", "Pre B", "Pre C"}},
		{models.SectionPrimary, []string{"Level 1", "Level 2", "Level 3", "Level 4", "Level 5", "Level 6", "Level 7"}},
		{models.Section("Secondary"), nil},
		{models.Section(""), nil},
	}
	for _, tt := range tests {
		got := ClassesFor(tt.section)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ClassesFor(%q) = %v, want %v", tt.section, got, tt.want)
		}
	}
}

func TestSubjectsFor(t *testing.T) {
	tests := []struct {
		section models.Section
		want    []string
	}{
		{models.SectionPrePrimary, []string{"Number", "Social Development", "Oral", "Health Habits", "Writing"}},
		{models.SectionPrimary, []string{"Mathematics", "English", "Science", "Social Studies"}},
		{models.SectionDayCare, nil},
		{models.Section("Secondary"), nil},
	}
	for _, tt := range tests {
		got := SubjectsFor(tt.section)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SubjectsFor(%q) = %v, want %v", tt.section, got, tt.want)
		}
	}
}

// Same input, same output: the tables are static and the accessors must
// not expose shared state a caller could mutate.
func TestCatalogStable(t *testing.T) {
	for _, section := range RegistrationSections() {
		first := ClassesFor(section)
		if len(first) == 0 {
			t.Fatalf("ClassesFor(%q) is empty", section)
		}
		first[0] = "tampered"
		second := ClassesFor(section)
		if second[0] == "tampered" {
			t.Errorf("ClassesFor(%q) leaked internal state", section)
		}
	}
	for _, section := range InterviewSections() {
		if len(SubjectsFor(section)) == 0 {
			t.Fatalf("SubjectsFor(%q) is empty", section)
		}
	}
}

func TestValidClassAndSubject(t *testing.T) {
	if !ValidClass(models.SectionPrimary, "Level 3") {
		t.Error("Level 3 should be valid for Primary")
	}
	if ValidClass(models.SectionPrePrimary, "Level 3") {
		t.Error("Level 3 should not be valid for Pre-Primary")
	}
	if !ValidSubject(models.SectionPrePrimary, "Oral") {
		t.Error("Oral should be valid for Pre-Primary")
	}
	if ValidSubject(models.SectionDayCare, "Number") {
		t.Error("Day Care has no subjects")
	}
	if ValidClass("", "Pre A") {
		t.Error("no section means no valid classes")
	}
}

func TestValidStream(t *testing.T) {
	if !ValidStream(models.SectionPrimary, "Apple") {
		t.Error("Apple should be a Primary stream")
	}
	if ValidStream(models.SectionDayCare, "Apple") {
		t.Error("Day Care has no streams")
	}
	if !ValidStream(models.SectionDayCare, "") {
		t.Error("empty stream is always allowed")
	}
}
