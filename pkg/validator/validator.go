package validator

import (
	"regexp"
	"time"

	v10 "github.com/go-playground/validator/v10"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

var (
	// Letters, spaces, hyphens and apostrophes. Covers names and
	// specialties ("Dr. O'Neil" style input arrives pre-trimmed).
	personNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s\-']*$`)

	// Diagnosis text: letters, spaces, commas and hyphens, at least 3
	// characters ("Pneumonia", "Chronic Back Pain").
	diagnosisRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s,\-]{2,}$`)
)

// Validator wraps go-playground validation with the domain's entry-time
// rules.
type Validator struct {
	v *v10.Validate
}

func New() *Validator {
	v := v10.New()
	// Registration only fails for blank tags; safe to ignore here.
	_ = v.RegisterValidation("personname", func(fl v10.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("diagnosis", func(fl v10.FieldLevel) bool {
		return diagnosisRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct validates the tagged fields of obj and reports the first failure
// as a validation error.
func (v *Validator) Struct(obj interface{}) error {
	if err := v.v.Struct(obj); err != nil {
		return errors.NewValidation("invalid input", err)
	}
	return nil
}

// BirthDate enforces the shared person invariant: not in the future and not
// before the minimum plausible year.
func (v *Validator) BirthDate(birthDate time.Time) error {
	now := time.Now()
	if birthDate.After(now) {
		return errors.NewValidation("birth date cannot be in the future", nil)
	}
	if birthDate.Year() < model.MinBirthYear {
		return errors.NewValidation("birth date is implausibly old", nil)
	}
	return nil
}
