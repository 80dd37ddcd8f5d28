// Package admissions implements the admission workflow engine: the grading
// rules, the section catalog, the interview state transitions and the
// guardian linking used by the registration flow.
package admissions

import "github.com/dementa/mjs/app/models"

// Strategy names a score-to-outcome mapping. Two incompatible rules are in
// active use at different entry points, so the caller always picks one
// explicitly: the new-interview flow grades with Binary, the score-update
// flow with Banded.
type Strategy string

const (
	Binary Strategy = "binary"
	Banded Strategy = "banded"
)

// Grade is the outcome of applying a grading strategy to a score. Aggregate
// is empty under the Binary strategy, which has no letter bands.
type Grade struct {
	Aggregate string `json:"aggregate,omitempty"`
	Passed    bool   `json:"passed"`
}

// Aggregate bands in descending score order, first match wins.
var bands = []struct {
	min  float64
	name string
}{
	{90, "D1"},
	{80, "D2"},
	{75, "C3"},
	{65, "C4"},
	{55, "C5"},
	{45, "C6"},
	{39, "P8"},
}

var passAggregates = map[string]bool{
	"D1": true, "D2": true, "C3": true, "C4": true, "C5": true, "C6": true,
}

// BandOf maps a score to its aggregate band. Scores below the lowest
// threshold fall through to F9.
func BandOf(score float64) string {
	for _, b := range bands {
		if score >= b.min {
			return b.name
		}
	}
	return "F9"
}

// GradeFor applies the named strategy to a score. Pure and total over
// [0,100]; range checking is the caller's responsibility.
func GradeFor(strategy Strategy, score float64) Grade {
	if strategy == Banded {
		agg := BandOf(score)
		return Grade{Aggregate: agg, Passed: passAggregates[agg]}
	}
	return Grade{Passed: score >= 50}
}

// StatusFor derives the interview status from a score under the given
// strategy. A nil score always means Pending.
func StatusFor(strategy Strategy, score *float64) models.InterviewStatus {
	if score == nil {
		return models.InterviewPending
	}
	if GradeFor(strategy, *score).Passed {
		return models.InterviewPassed
	}
	return models.InterviewFailed
}

// ParseStrategy reads a strategy name from a request payload, falling back
// to the entry point's default when the field is absent.
func ParseStrategy(name string, fallback Strategy) Strategy {
	switch Strategy(name) {
	case Binary, Banded:
		return Strategy(name)
	}
	return fallback
}
