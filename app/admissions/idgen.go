package admissions

import (
	"fmt"
	"math/rand"
	"time"
)

// IDGenerator builds the human-readable identifiers used on registration
// records. Clock and randomness are injectable so the formats can be
// tested without wall-clock dependence. Collision probability at this
// scale is accepted as negligible; these are not cryptographic tokens.
type IDGenerator struct {
	Now  func() time.Time
	Intn func(n int) int
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{Now: time.Now, Intn: rand.Intn}
}

// RegistrationID returns a student registration number in the
// MJS-YYMMDD-HHMMSS-NNN format.
func (g *IDGenerator) RegistrationID() string {
	now := g.Now()
	return fmt.Sprintf("MJS-%s-%s-%03d", now.Format("060102"), now.Format("150405"), g.Intn(1000))
}

// GuardianID returns a guardian identifier in the GYYMMDDHHMMSSNNN format.
func (g *IDGenerator) GuardianID() string {
	now := g.Now()
	return fmt.Sprintf("G%s%s%03d", now.Format("060102"), now.Format("150405"), g.Intn(1000))
}
