package admissions

import (
	"regexp"
	"testing"
	"time"
)

func TestRegistrationIDFormat(t *testing.T) {
	g := &IDGenerator{
		Now:  func() time.Time { return time.Date(2025, 3, 7, 9, 5, 2, 0, time.UTC) },
		Intn: func(n int) int { return 42 },
	}
	if got, want := g.RegistrationID(), "MJS-250307-090502-042"; got != want {
		t.Errorf("RegistrationID() = %q, want %q", got, want)
	}
	if got, want := g.GuardianID(), "G250307090502042"; got != want {
		t.Errorf("GuardianID() = %q, want %q", got, want)
	}
}

func TestDefaultGeneratorShape(t *testing.T) {
	g := NewIDGenerator()
	reg := regexp.MustCompile(`^MJS-\d{6}-\d{6}-\d{3}$`)
	if id := g.RegistrationID(); !reg.MatchString(id) {
		t.Errorf("RegistrationID() = %q does not match MJS-YYMMDD-HHMMSS-NNN", id)
	}
	gua := regexp.MustCompile(`^G\d{15}$`)
	if id := g.GuardianID(); !gua.MatchString(id) {
		t.Errorf("GuardianID() = %q does not match GYYMMDDHHMMSSNNN", id)
	}
}
