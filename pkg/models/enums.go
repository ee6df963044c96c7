package models

// Gender is the user's declared gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// GenderValues returns all valid genders in display order.
func GenderValues() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// IsValid checks if the gender is a known value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ExperienceLevel is the user's training background.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
	ExperienceExpert       ExperienceLevel = "EXPERT"
)

// ExperienceLevelValues returns all valid experience levels in display order.
func ExperienceLevelValues() []ExperienceLevel {
	return []ExperienceLevel{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert}
}

// IsValid checks if the experience level is a known value.
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

// SessionFrequency is the number of sessions per week.
type SessionFrequency string

const (
	FrequencyOneToTwo    SessionFrequency = "ONE_TO_TWO"
	FrequencyThreeToFour SessionFrequency = "THREE_TO_FOUR"
	FrequencyFiveToSix   SessionFrequency = "FIVE_TO_SIX"
	FrequencyDaily       SessionFrequency = "DAILY"
)

// SessionFrequencyValues returns all valid frequencies in display order.
func SessionFrequencyValues() []SessionFrequency {
	return []SessionFrequency{FrequencyOneToTwo, FrequencyThreeToFour, FrequencyFiveToSix, FrequencyDaily}
}

// IsValid checks if the frequency is a known value.
func (f SessionFrequency) IsValid() bool {
	switch f {
	case FrequencyOneToTwo, FrequencyThreeToFour, FrequencyFiveToSix, FrequencyDaily:
		return true
	}
	return false
}

// SessionDuration is the planned length of one session.
type SessionDuration string

const (
	Duration30  SessionDuration = "MINUTES_30"
	Duration45  SessionDuration = "MINUTES_45"
	Duration60  SessionDuration = "MINUTES_60"
	Duration90  SessionDuration = "MINUTES_90"
	Duration120 SessionDuration = "MINUTES_120"
)

// SessionDurationValues returns all valid durations in display order.
func SessionDurationValues() []SessionDuration {
	return []SessionDuration{Duration30, Duration45, Duration60, Duration90, Duration120}
}

// IsValid checks if the duration is a known value.
func (d SessionDuration) IsValid() bool {
	_, ok := durationMinutes[d]
	return ok
}

var durationMinutes = map[SessionDuration]int{
	Duration30:  30,
	Duration45:  45,
	Duration60:  60,
	Duration90:  90,
	Duration120: 120,
}

// Minutes returns the session length in minutes, or 0 for unknown values.
func (d SessionDuration) Minutes() int {
	return durationMinutes[d]
}

// MainGoal is the primary training objective.
type MainGoal string

const (
	GoalWeightLoss     MainGoal = "WEIGHT_LOSS"
	GoalMuscleGain     MainGoal = "MUSCLE_GAIN"
	GoalStrength       MainGoal = "STRENGTH"
	GoalEndurance      MainGoal = "ENDURANCE"
	GoalGeneralFitness MainGoal = "GENERAL_FITNESS"
	GoalFlexibility    MainGoal = "FLEXIBILITY"
)

// MainGoalValues returns all valid goals in display order.
func MainGoalValues() []MainGoal {
	return []MainGoal{GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalEndurance, GoalGeneralFitness, GoalFlexibility}
}

// IsValid checks if the goal is a known value.
func (g MainGoal) IsValid() bool {
	switch g {
	case GoalWeightLoss, GoalMuscleGain, GoalStrength, GoalEndurance, GoalGeneralFitness, GoalFlexibility:
		return true
	}
	return false
}

// TrainingPreference is the favored training style.
type TrainingPreference string

const (
	PreferenceStrengthTraining TrainingPreference = "STRENGTH_TRAINING"
	PreferenceCardio           TrainingPreference = "CARDIO"
	PreferenceHIIT             TrainingPreference = "HIIT"
	PreferenceYoga             TrainingPreference = "YOGA"
	PreferenceCrossfit         TrainingPreference = "CROSSFIT"
	PreferenceMixed            TrainingPreference = "MIXED"
)

// TrainingPreferenceValues returns all valid preferences in display order.
func TrainingPreferenceValues() []TrainingPreference {
	return []TrainingPreference{
		PreferenceStrengthTraining, PreferenceCardio, PreferenceHIIT,
		PreferenceYoga, PreferenceCrossfit, PreferenceMixed,
	}
}

// IsValid checks if the preference is a known value.
func (p TrainingPreference) IsValid() bool {
	switch p {
	case PreferenceStrengthTraining, PreferenceCardio, PreferenceHIIT,
		PreferenceYoga, PreferenceCrossfit, PreferenceMixed:
		return true
	}
	return false
}

// Equipment is the equipment the user can train with.
type Equipment string

const (
	EquipmentNone          Equipment = "NONE"
	EquipmentBasicHome     Equipment = "BASIC_HOME"
	EquipmentFullHomeGym   Equipment = "FULL_HOME_GYM"
	EquipmentCommercialGym Equipment = "COMMERCIAL_GYM"
)

// EquipmentValues returns all valid equipment values in display order.
func EquipmentValues() []Equipment {
	return []Equipment{EquipmentNone, EquipmentBasicHome, EquipmentFullHomeGym, EquipmentCommercialGym}
}

// IsValid checks if the equipment value is known.
func (e Equipment) IsValid() bool {
	switch e {
	case EquipmentNone, EquipmentBasicHome, EquipmentFullHomeGym, EquipmentCommercialGym:
		return true
	}
	return false
}

// tokens converts a typed value set to plain strings.
func tokens[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
