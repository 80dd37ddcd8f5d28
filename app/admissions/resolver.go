package admissions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dementa/mjs/app/models"
)

// ErrInvalidGuardian is reported when a continuing-parent ID fails
// verification. It blocks only the guardian-resolution step and is shown
// as "Invalid Guardian", never a generic error banner.
var ErrInvalidGuardian = errors.New("invalid guardian")

// GuardianDirectory is the storage the resolver links guardians through.
type GuardianDirectory interface {
	Lookup(guardianID string) (*models.GuardianRecord, error)
	Create(g *models.GuardianRecord) error
}

// Guardian slots on a registration form.
const (
	PrimaryGuardian   = 1
	SecondaryGuardian = 2
)

// GuardianInput is the new-parent data entered on a registration form.
type GuardianInput struct {
	FullName     string              `json:"full_name"`
	Contact      string              `json:"contact"`
	NIN          string              `json:"nin"`
	Email        string              `json:"email,omitempty"`
	Relationship models.Relationship `json:"relationship"`
	Photo        string              `json:"photo,omitempty"`
}

// Empty reports whether nothing at all was entered for this guardian.
func (in GuardianInput) Empty() bool {
	return strings.TrimSpace(in.FullName) == "" &&
		strings.TrimSpace(in.Contact) == "" &&
		strings.TrimSpace(in.NIN) == "" &&
		strings.TrimSpace(in.Email) == "" &&
		in.Relationship == ""
}

func slotLabel(slot int) string {
	if slot == SecondaryGuardian {
		return "Secondary"
	}
	return "Primary"
}

// Validate checks the required fields. A partially filled guardian is a
// validation error, never silently dropped.
func (in GuardianInput) Validate(slot int) error {
	label := slotLabel(slot)
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%s guardian full name is required", label)
	}
	if strings.TrimSpace(in.Contact) == "" {
		return fmt.Errorf("%s guardian contact is required", label)
	}
	if strings.TrimSpace(in.NIN) == "" {
		return fmt.Errorf("%s guardian NIN is required", label)
	}
	if in.Relationship == "" {
		return fmt.Errorf("%s guardian relationship is required", label)
	}
	return nil
}

// Resolver decides whether a registration submission creates a new
// guardian record or re-uses a verified existing one. A resolver lives
// for one submission; the saved map guarantees at most one create per
// slot even when the submit handler fires twice.
type Resolver struct {
	dir   GuardianDirectory
	ids   *IDGenerator
	saved map[int]string
}

func NewResolver(dir GuardianDirectory, ids *IDGenerator) *Resolver {
	return &Resolver{dir: dir, ids: ids, saved: make(map[int]string)}
}

// ResolveNew validates the input, generates a guardian identifier and
// issues exactly one create for the slot. Repeat calls return the
// already-created identifier without touching the directory again.
func (r *Resolver) ResolveNew(slot int, in GuardianInput) (string, error) {
	if id, ok := r.saved[slot]; ok {
		return id, nil
	}
	if err := in.Validate(slot); err != nil {
		return "", err
	}

	rec := &models.GuardianRecord{
		GuardianID:   r.ids.GuardianID(),
		FullName:     strings.TrimSpace(in.FullName),
		Contact:      strings.TrimSpace(in.Contact),
		NIN:          strings.TrimSpace(in.NIN),
		Relationship: in.Relationship,
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		rec.Email = &email
	}
	if in.Photo != "" {
		rec.Photo = &in.Photo
	}

	if err := r.dir.Create(rec); err != nil {
		return "", err
	}
	r.saved[slot] = rec.GuardianID
	return rec.GuardianID, nil
}

// ResolveContinuing verifies a supplied guardian identifier against the
// directory. On success the existing record is returned for read-only
// display and its identifier is used directly; no create is ever issued.
// On failure it reports ErrInvalidGuardian and never falls back to
// creating a record for an unverified ID.
func (r *Resolver) ResolveContinuing(guardianID string) (*models.GuardianRecord, error) {
	guardianID = strings.TrimSpace(guardianID)
	if guardianID == "" {
		return nil, ErrInvalidGuardian
	}
	rec, err := r.dir.Lookup(guardianID)
	if err != nil || rec == nil {
		return nil, ErrInvalidGuardian
	}
	return rec, nil
}
