package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitforge/fitforge-cli/pkg/models"
)

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("form: unknown field")

	// ErrFormInvalid is returned when a request is built from an invalid form.
	ErrFormInvalid = errors.New("form: form is invalid")
)

// Form holds the working copy of a training profile as raw text values,
// together with per-field touched flags.
type Form struct {
	configs map[Field]fieldConfig
	values  map[Field]string
	touched map[Field]bool
}

// New builds an empty form with its validators.
func New() *Form {
	f := &Form{configs: newFieldConfigs()}
	f.Reset()
	return f
}

// Reset restores initial values and clears every touched flag.
func (f *Form) Reset() {
	f.values = make(map[Field]string, len(f.configs))
	f.touched = make(map[Field]bool, len(f.configs))
	for name, cfg := range f.configs {
		f.values[name] = cfg.initial
	}
}

// Has reports whether name is a field of this form.
func (f *Form) Has(name Field) bool {
	_, ok := f.configs[name]
	return ok
}

// Value returns the raw value of a field.
func (f *Form) Value(name Field) string {
	return f.values[name]
}

// SetValue replaces the raw value of a field without touching it.
func (f *Form) SetValue(name Field, value string) error {
	if !f.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

// Touch marks a field as interacted with.
func (f *Form) Touch(name Field) {
	if f.Has(name) {
		f.touched[name] = true
	}
}

// IsTouched reports whether the user has interacted with the field.
func (f *Form) IsTouched(name Field) bool {
	return f.touched[name]
}

// MarkAllTouched reveals validation state on every field at once.
func (f *Form) MarkAllTouched() {
	for name := range f.configs {
		f.touched[name] = true
	}
}

// Errors runs the field's validators against its current value.
func (f *Form) Errors(name Field) []FieldError {
	cfg, ok := f.configs[name]
	if !ok {
		return nil
	}
	var errs []FieldError
	for _, v := range cfg.validators {
		if fe := v(f.values[name]); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// FieldValid reports whether the field passes all of its validators,
// regardless of touched state.
func (f *Form) FieldValid(name Field) bool {
	return f.Has(name) && len(f.Errors(name)) == 0
}

// IsFieldInvalid is true only when the field was touched and fails
// validation. Untouched fields never report errors.
func (f *Form) IsFieldInvalid(name Field) bool {
	return f.touched[name] && !f.FieldValid(name)
}

// Valid reports whether every field passes validation.
func (f *Form) Valid() bool {
	for name := range f.configs {
		if !f.FieldValid(name) {
			return false
		}
	}
	return true
}

// IsRequired reports whether the field must be filled in.
func (f *Form) IsRequired(name Field) bool {
	return f.configs[name].required
}

// Category returns the enum category backing a select field.
// The second result is false for numeric fields.
func (f *Form) Category(name Field) (models.Category, bool) {
	cfg, ok := f.configs[name]
	if !ok || cfg.category == "" {
		return "", false
	}
	return cfg.category, true
}

// Patch copies every data field of info into the form. Touched flags are
// left unchanged.
func (f *Form) Patch(info models.TrainingInfo) {
	f.values[FieldGender] = string(info.Gender)
	f.values[FieldWeight] = formatNumber(info.Weight)
	f.values[FieldHeight] = formatNumber(info.Height)
	f.values[FieldBodyFatPercentage] = ""
	if info.BodyFatPercentage != nil {
		f.values[FieldBodyFatPercentage] = formatNumber(*info.BodyFatPercentage)
	}
	f.values[FieldExperienceLevel] = string(info.ExperienceLevel)
	f.values[FieldSessionFrequency] = string(info.SessionFrequency)
	f.values[FieldSessionDuration] = string(info.SessionDuration)
	f.values[FieldMainGoal] = string(info.MainGoal)
	f.values[FieldTrainingPreference] = string(info.TrainingPreference)
	f.values[FieldEquipment] = string(info.Equipment)
}

// CreateRequest builds the create payload from the current values.
// An empty body-fat value is omitted rather than sent as an empty string.
func (f *Form) CreateRequest() (models.CreateTrainingInfoRequest, error) {
	if !f.Valid() {
		return models.CreateTrainingInfoRequest{}, ErrFormInvalid
	}
	weight, _ := parseNumber(f.values[FieldWeight])
	height, _ := parseNumber(f.values[FieldHeight])
	req := models.CreateTrainingInfoRequest{
		Gender:             models.Gender(f.trimmed(FieldGender)),
		Weight:             weight,
		Height:             height,
		ExperienceLevel:    models.ExperienceLevel(f.trimmed(FieldExperienceLevel)),
		SessionFrequency:   models.SessionFrequency(f.trimmed(FieldSessionFrequency)),
		SessionDuration:    models.SessionDuration(f.trimmed(FieldSessionDuration)),
		MainGoal:           models.MainGoal(f.trimmed(FieldMainGoal)),
		TrainingPreference: models.TrainingPreference(f.trimmed(FieldTrainingPreference)),
		Equipment:          models.Equipment(f.trimmed(FieldEquipment)),
	}
	if bf, ok := parseNumber(f.values[FieldBodyFatPercentage]); ok {
		req.BodyFatPercentage = &bf
	}
	return req, nil
}

// UpdateRequest builds an update payload carrying every field.
func (f *Form) UpdateRequest() (models.UpdateTrainingInfoRequest, error) {
	req, err := f.CreateRequest()
	if err != nil {
		return models.UpdateTrainingInfoRequest{}, err
	}
	return req.AsUpdate(), nil
}

func (f *Form) trimmed(name Field) string {
	return strings.TrimSpace(f.values[name])
}
