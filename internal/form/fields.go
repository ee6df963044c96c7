// Package form implements the training-info form: the typed field model and
// its validators, the four-step navigation machine, the existence-driven
// create/update controller, and the shared API error mapping.
package form

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/fitforge/fitforge-cli/pkg/models"
)

// Field names one form control. Values match the JSON field names.
type Field string

const (
	FieldGender             Field = "gender"
	FieldWeight             Field = "weight"
	FieldHeight             Field = "height"
	FieldBodyFatPercentage  Field = "bodyFatPercentage"
	FieldExperienceLevel    Field = "experienceLevel"
	FieldSessionFrequency   Field = "sessionFrequency"
	FieldSessionDuration    Field = "sessionDuration"
	FieldMainGoal           Field = "mainGoal"
	FieldTrainingPreference Field = "trainingPreference"
	FieldEquipment          Field = "equipment"
)

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldGender, FieldWeight, FieldHeight, FieldBodyFatPercentage,
		FieldExperienceLevel, FieldSessionFrequency, FieldSessionDuration,
		FieldMainGoal, FieldTrainingPreference, FieldEquipment,
	}
}

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	ErrKindRequired ErrorKind = "required"
	ErrKindMin      ErrorKind = "min"
	ErrKindMax      ErrorKind = "max"
	ErrKindNumber   ErrorKind = "number"
	ErrKindOption   ErrorKind = "option"
)

// FieldError is a single validation failure. Limit is set for min/max.
type FieldError struct {
	Kind  ErrorKind
	Limit float64
}

// Error implements the error interface.
func (e FieldError) Error() string {
	switch e.Kind {
	case ErrKindMin:
		return fmt.Sprintf("must be at least %s", formatNumber(e.Limit))
	case ErrKindMax:
		return fmt.Sprintf("must be at most %s", formatNumber(e.Limit))
	case ErrKindNumber:
		return "must be a number"
	case ErrKindOption:
		return "must be one of the listed options"
	}
	return "is required"
}

// Validator checks one raw field value. A nil result means valid.
type Validator func(value string) *FieldError

// Required rejects empty or whitespace-only values.
func Required() Validator {
	return func(value string) *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Kind: ErrKindRequired}
		}
		return nil
	}
}

// Range accepts numbers within [lo, hi]. Empty values pass: absence is
// enforced by Required, not by Range.
func Range(lo, hi float64) Validator {
	return func(value string) *FieldError {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		n, ok := parseNumber(value)
		if !ok {
			return &FieldError{Kind: ErrKindNumber}
		}
		if n < lo {
			return &FieldError{Kind: ErrKindMin, Limit: lo}
		}
		if n > hi {
			return &FieldError{Kind: ErrKindMax, Limit: hi}
		}
		return nil
	}
}

// OneOf accepts only tokens from allowed. Empty values pass.
func OneOf(allowed []string) Validator {
	return func(value string) *FieldError {
		v := strings.TrimSpace(value)
		if v == "" || slices.Contains(allowed, v) {
			return nil
		}
		return &FieldError{Kind: ErrKindOption}
	}
}

// fieldConfig is the static definition of one control.
type fieldConfig struct {
	validators []Validator
	initial    string
	category   models.Category // empty for numeric fields
	required   bool
}

// newFieldConfigs builds the field configuration map. It runs once per form.
func newFieldConfigs() map[Field]fieldConfig {
	enum := func(cat models.Category) fieldConfig {
		return fieldConfig{
			validators: []Validator{Required(), OneOf(cat.Tokens())},
			category:   cat,
			required:   true,
		}
	}
	return map[Field]fieldConfig{
		FieldGender: enum(models.CategoryGender),
		FieldWeight: {
			validators: []Validator{Required(), Range(models.MinWeightKG, models.MaxWeightKG)},
			required:   true,
		},
		FieldHeight: {
			validators: []Validator{Required(), Range(models.MinHeightCM, models.MaxHeightCM)},
			required:   true,
		},
		FieldBodyFatPercentage: {
			validators: []Validator{Range(models.MinBodyFatPct, models.MaxBodyFatPct)},
		},
		FieldExperienceLevel:    enum(models.CategoryExperienceLevel),
		FieldSessionFrequency:   enum(models.CategorySessionFrequency),
		FieldSessionDuration:    enum(models.CategorySessionDuration),
		FieldMainGoal:           enum(models.CategoryMainGoal),
		FieldTrainingPreference: enum(models.CategoryTrainingPreference),
		FieldEquipment:          enum(models.CategoryEquipment),
	}
}

// parseNumber accepts "72.5" and "72,5".
func parseNumber(value string) (float64, bool) {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
