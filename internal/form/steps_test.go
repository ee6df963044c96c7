package form

import "testing"

func TestStepFields_Grouping(t *testing.T) {
	t.Parallel()

	total := 0
	for _, s := range Steps() {
		total += len(StepFields(s))
	}
	if total != len(Fields()) {
		t.Errorf("steps cover %d fields, want %d", total, len(Fields()))
	}
	if StepFields(Step(9)) != nil {
		t.Error("unknown step should have no fields")
	}
	if s, ok := StepOf(FieldEquipment); !ok || s != Step4 {
		t.Errorf("StepOf(equipment) = %d, %v", s, ok)
	}
	if _, ok := StepOf(Field("x")); ok {
		t.Error("unknown field should have no step")
	}
}

func TestIsStepValid_Step1TogglesEachField(t *testing.T) {
	t.Parallel()

	invalid := map[Field]string{
		FieldGender: "",
		FieldWeight: "25",
		FieldHeight: "300",
	}

	f := New()
	fillValid(f)
	s := NewStepper(f)
	if !s.IsStepValid(Step1) {
		t.Fatal("step 1 should be valid with gender, weight and height set")
	}

	for name, bad := range invalid {
		t.Run(string(name), func(t *testing.T) {
			good := f.Value(name)
			_ = f.SetValue(name, bad)
			if s.IsStepValid(Step1) {
				t.Errorf("step 1 valid with invalid %s", name)
			}
			_ = f.SetValue(name, good)
			if !s.IsStepValid(Step1) {
				t.Errorf("step 1 invalid after restoring %s", name)
			}
		})
	}
}

func TestIsStepValid_Step1OptionalBodyFat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bodyFat string
		want    bool
	}{
		{"", true},
		{"3", true},
		{"22.5", true},
		{"50", true},
		{"2", false},
		{"60", false},
		{"abc", false},
	}
	for _, tt := range tests {
		t.Run("bodyFat="+tt.bodyFat, func(t *testing.T) {
			t.Parallel()

			f := New()
			fillValid(f)
			_ = f.SetValue(FieldBodyFatPercentage, tt.bodyFat)
			if got := NewStepper(f).IsStepValid(Step1); got != tt.want {
				t.Errorf("IsStepValid(1) with body fat %q = %v, want %v", tt.bodyFat, got, tt.want)
			}
		})
	}
}

func TestIsStepValid_IgnoresTouched(t *testing.T) {
	t.Parallel()

	f := New()
	s := NewStepper(f)
	if s.IsStepValid(Step4) {
		t.Error("untouched empty equipment must still make step 4 invalid")
	}
	if s.IsStepValid(Step(0)) || s.IsStepValid(Step(5)) {
		t.Error("out-of-range steps must be invalid")
	}
}

func TestNextStep(t *testing.T) {
	t.Parallel()

	f := New()
	s := NewStepper(f)

	if s.NextStep() {
		t.Error("NextStep on invalid step 1 should not advance")
	}
	if s.Current() != Step1 {
		t.Fatalf("Current() = %d, want 1", s.Current())
	}

	fillValid(f)
	for want := Step2; want <= Step4; want++ {
		if !s.NextStep() {
			t.Fatalf("NextStep to %d failed", want)
		}
		if s.Current() != want {
			t.Fatalf("Current() = %d, want %d", s.Current(), want)
		}
	}
	if !s.IsLast() {
		t.Error("IsLast() should be true at step 4")
	}
	if s.NextStep() {
		t.Error("NextStep at step 4 should be a no-op")
	}
	if s.Current() != Step4 {
		t.Errorf("Current() = %d, want 4", s.Current())
	}
}

func TestPreviousStep_DoesNotRevalidate(t *testing.T) {
	t.Parallel()

	f := New()
	fillValid(f)
	s := NewStepper(f)
	s.NextStep()
	s.NextStep()

	_ = f.SetValue(FieldGender, "")
	if !s.PreviousStep() || s.Current() != Step2 {
		t.Fatalf("PreviousStep should move to 2, got %d", s.Current())
	}
	if !s.PreviousStep() || s.Current() != Step1 {
		t.Fatalf("PreviousStep should move to 1, got %d", s.Current())
	}
	if s.PreviousStep() {
		t.Error("PreviousStep at step 1 should be a no-op")
	}

	s.NextStep()
	if s.Current() != Step1 {
		t.Error("NextStep must stay blocked on invalid step 1")
	}
	s.Reset()
	if s.Current() != Step1 {
		t.Error("Reset should return to step 1")
	}
}
