package form

// Step is a page of the wizard, numbered 1 to 4.
type Step int

const (
	// Step1 collects personal data: gender, weight, height, body fat.
	Step1 Step = iota + 1
	// Step2 collects experience: level, frequency, duration.
	Step2
	// Step3 collects goals: main goal, training preference.
	Step3
	// Step4 collects equipment and is the submit page.
	Step4
)

// Steps returns every step in order.
func Steps() []Step {
	return []Step{Step1, Step2, Step3, Step4}
}

var stepFields = map[Step][]Field{
	Step1: {FieldGender, FieldWeight, FieldHeight, FieldBodyFatPercentage},
	Step2: {FieldExperienceLevel, FieldSessionFrequency, FieldSessionDuration},
	Step3: {FieldMainGoal, FieldTrainingPreference},
	Step4: {FieldEquipment},
}

// StepFields returns the fields shown on a step, or nil for an unknown step.
func StepFields(s Step) []Field {
	fields := stepFields[s]
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// StepOf returns the step that contains the field.
func StepOf(name Field) (Step, bool) {
	for _, s := range Steps() {
		for _, f := range stepFields[s] {
			if f == name {
				return s, true
			}
		}
	}
	return 0, false
}

// Stepper is the linear step navigation machine over a form.
type Stepper struct {
	form    *Form
	current Step
}

// NewStepper starts navigation at Step1.
func NewStepper(f *Form) *Stepper {
	return &Stepper{form: f, current: Step1}
}

// Current returns the active step.
func (s *Stepper) Current() Step {
	return s.current
}

// IsLast reports whether the active step is the submit page.
func (s *Stepper) IsLast() bool {
	return s.current == Step4
}

// IsStepValid reports whether every field of step n is valid, including
// optional fields that hold a value.
// Touched state is ignored. Unknown steps are never valid.
func (s *Stepper) IsStepValid(n Step) bool {
	fields, ok := stepFields[n]
	if !ok {
		return false
	}
	for _, f := range fields {
		if !s.form.FieldValid(f) {
			return false
		}
	}
	return true
}

// NextStep advances one step when the current step is valid.
// It returns whether the step changed.
func (s *Stepper) NextStep() bool {
	if s.current >= Step4 || !s.IsStepValid(s.current) {
		return false
	}
	s.current++
	return true
}

// PreviousStep goes back one step without re-validating.
// It returns whether the step changed.
func (s *Stepper) PreviousStep() bool {
	if s.current <= Step1 {
		return false
	}
	s.current--
	return true
}

// Reset returns to Step1.
func (s *Stepper) Reset() {
	s.current = Step1
}
