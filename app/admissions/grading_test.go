package admissions

import (
	"testing"

	"github.com/dementa/mjs/app/models"
)

func TestBandOf(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "D1"},
		{92, "D1"},
		{90, "D1"},
		{89, "D2"},
		{80, "D2"},
		{79, "C3"},
		{75, "C3"},
		{74, "C4"},
		{65, "C4"},
		{64, "C5"},
		{55, "C5"},
		{54, "C6"},
		{45, "C6"},
		{44, "P8"},
		{40, "P8"},
		{39, "P8"},
		{38, "F9"},
		{0, "F9"},
	}
	for _, tt := range tests {
		if got := BandOf(tt.score); got != tt.want {
			t.Errorf("BandOf(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// Every integer score in [0,100] maps to exactly one band, and the pass
// flag agrees with band membership in {D1..C6}.
func TestBandsExhaustiveAndConsistent(t *testing.T) {
	for s := 0; s <= 100; s++ {
		score := float64(s)
		band := BandOf(score)
		if band == "" {
			t.Fatalf("score %d has no band", s)
		}
		g := GradeFor(Banded, score)
		if g.Aggregate != band {
			t.Errorf("score %d: GradeFor aggregate %q != BandOf %q", s, g.Aggregate, band)
		}
		if g.Passed != passAggregates[band] {
			t.Errorf("score %d: passed=%v disagrees with band %q", s, g.Passed, band)
		}
	}
}

func TestGradeForBinary(t *testing.T) {
	tests := []struct {
		score  float64
		passed bool
	}{
		{0, false},
		{49, false},
		{49.9, false},
		{50, true},
		{92, true},
		{100, true},
	}
	for _, tt := range tests {
		g := GradeFor(Binary, tt.score)
		if g.Passed != tt.passed {
			t.Errorf("GradeFor(Binary, %v).Passed = %v, want %v", tt.score, g.Passed, tt.passed)
		}
		if g.Aggregate != "" {
			t.Errorf("GradeFor(Binary, %v) has aggregate %q, want none", tt.score, g.Aggregate)
		}
	}
}

func TestGradeForDeterministic(t *testing.T) {
	for _, strategy := range []Strategy{Binary, Banded} {
		first := GradeFor(strategy, 67)
		second := GradeFor(strategy, 67)
		if first != second {
			t.Errorf("%s: GradeFor not deterministic: %+v vs %+v", strategy, first, second)
		}
	}
}

func TestStatusFor(t *testing.T) {
	score := func(v float64) *float64 { return &v }
	tests := []struct {
		name     string
		strategy Strategy
		score    *float64
		want     models.InterviewStatus
	}{
		{"no score is pending", Binary, nil, models.InterviewPending},
		{"no score is pending banded", Banded, nil, models.InterviewPending},
		{"binary pass at 92", Binary, score(92), models.InterviewPassed},
		{"binary fail at 40", Binary, score(40), models.InterviewFailed},
		{"banded pass at 45", Banded, score(45), models.InterviewPassed},
		{"banded fail at 40", Banded, score(40), models.InterviewFailed},
		{"banded fail at 44", Banded, score(44), models.InterviewFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.strategy, tt.score); got != tt.want {
				t.Errorf("StatusFor(%s, %v) = %q, want %q", tt.strategy, tt.score, got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		fallback Strategy
		want     Strategy
	}{
		{"binary", Banded, Binary},
		{"banded", Binary, Banded},
		{"", Binary, Binary},
		{"", Banded, Banded},
		{"nonsense", Binary, Binary},
	}
	for _, tt := range tests {
		if got := ParseStrategy(tt.name, tt.fallback); got != tt.want {
			t.Errorf("ParseStrategy(%q, %q) = %q, want %q", tt.name, tt.fallback, got, tt.want)
		}
	}
}
