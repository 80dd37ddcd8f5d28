package admissions

import "github.com/dementa/mjs/app/models"

// Static lookup tables for the class, subject and stream choices each
// section allows. Day Care exists in the registration flow only and has
// no interview subjects.
var classesBySection = map[models.Section][]string{
	models.SectionDayCare:    {"Infant", "Toddler", "Pre-Nursery"},
	models.SectionPrePrimary: {"Pre A", "Pre B", "Pre C"},
	models.SectionPrimary:    {"Level 1", "Level 2", "Level 3", "Level 4", "Level 5", "Level 6", "Level 7"},
}

var subjectsBySection = map[models.Section][]string{
	models.SectionPrePrimary: {"Number", "Social Development", "Oral", "Health Habits", "Writing"},
	models.SectionPrimary:    {"Mathematics", "English", "Science", "Social Studies"},
}

var streamsBySection = map[models.Section][]string{
	models.SectionPrePrimary: {"1", "2", "3"},
	models.SectionPrimary:    {"Apple", "Lemon", "Orange"},
}

// ClassesFor returns the ordered class names valid for a section. Unknown
// sections yield an empty slice, not an error: callers treat empty as
// "pick a section first".
func ClassesFor(section models.Section) []string {
	return append([]string(nil), classesBySection[section]...)
}

// SubjectsFor returns the ordered subject names valid for a section.
func SubjectsFor(section models.Section) []string {
	return append([]string(nil), subjectsBySection[section]...)
}

// StreamsFor returns the stream options a section offers at registration.
func StreamsFor(section models.Section) []string {
	return append([]string(nil), streamsBySection[section]...)
}

// ValidClass reports whether class is an allowed choice for section.
func ValidClass(section models.Section, class string) bool {
	for _, c := range classesBySection[section] {
		if c == class {
			return true
		}
	}
	return false
}

// ValidSubject reports whether subject is an allowed choice for section.
func ValidSubject(section models.Section, subject string) bool {
	for _, s := range subjectsBySection[section] {
		if s == subject {
			return true
		}
	}
	return false
}

// ValidStream reports whether stream is an allowed choice for section. An
// empty stream is always allowed since streams are optional.
func ValidStream(section models.Section, stream string) bool {
	if stream == "" {
		return true
	}
	for _, s := range streamsBySection[section] {
		if s == stream {
			return true
		}
	}
	return false
}

// InterviewSections are the sections candidates can be interviewed for.
// Day Care admits without an interview.
func InterviewSections() []models.Section {
	return []models.Section{models.SectionPrePrimary, models.SectionPrimary}
}

// RegistrationSections are the sections open for student registration.
func RegistrationSections() []models.Section {
	return []models.Section{models.SectionDayCare, models.SectionPrePrimary, models.SectionPrimary}
}
