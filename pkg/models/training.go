package models

import (
	"fmt"
	"time"
)

// Physical bounds enforced on training profiles.
const (
	MinWeightKG   = 30
	MaxWeightKG   = 300
	MinHeightCM   = 100
	MaxHeightCM   = 250
	MinBodyFatPct = 3
	MaxBodyFatPct = 50
)

// TrainingInfo is the training profile of one user as stored by the API.
// BMI is computed server-side.
type TrainingInfo struct {
	ID                 *int64             `json:"id,omitempty"`
	UserID             *int64             `json:"userId,omitempty"`
	Gender             Gender             `json:"gender"`
	Weight             float64            `json:"weight"`
	Height             float64            `json:"height"`
	BodyFatPercentage  *float64           `json:"bodyFatPercentage,omitempty"`
	ExperienceLevel    ExperienceLevel    `json:"experienceLevel"`
	SessionFrequency   SessionFrequency   `json:"sessionFrequency"`
	SessionDuration    SessionDuration    `json:"sessionDuration"`
	MainGoal           MainGoal           `json:"mainGoal"`
	TrainingPreference TrainingPreference `json:"trainingPreference"`
	Equipment          Equipment          `json:"equipment"`
	BMI                float64            `json:"bmi,omitempty"`
	CreatedAt          *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time         `json:"updatedAt,omitempty"`
}

// CreateTrainingInfoRequest is the body of a create call.
// BodyFatPercentage is the only optional field.
type CreateTrainingInfoRequest struct {
	Gender             Gender             `json:"gender"`
	Weight             float64            `json:"weight"`
	Height             float64            `json:"height"`
	BodyFatPercentage  *float64           `json:"bodyFatPercentage,omitempty"`
	ExperienceLevel    ExperienceLevel    `json:"experienceLevel"`
	SessionFrequency   SessionFrequency   `json:"sessionFrequency"`
	SessionDuration    SessionDuration    `json:"sessionDuration"`
	MainGoal           MainGoal           `json:"mainGoal"`
	TrainingPreference TrainingPreference `json:"trainingPreference"`
	Equipment          Equipment          `json:"equipment"`
}

// UpdateTrainingInfoRequest is a partial update; nil fields are left unchanged.
type UpdateTrainingInfoRequest struct {
	Gender             *Gender             `json:"gender,omitempty"`
	Weight             *float64            `json:"weight,omitempty"`
	Height             *float64            `json:"height,omitempty"`
	BodyFatPercentage  *float64            `json:"bodyFatPercentage,omitempty"`
	ExperienceLevel    *ExperienceLevel    `json:"experienceLevel,omitempty"`
	SessionFrequency   *SessionFrequency   `json:"sessionFrequency,omitempty"`
	SessionDuration    *SessionDuration    `json:"sessionDuration,omitempty"`
	MainGoal           *MainGoal           `json:"mainGoal,omitempty"`
	TrainingPreference *TrainingPreference `json:"trainingPreference,omitempty"`
	Equipment          *Equipment          `json:"equipment,omitempty"`
}

// AsUpdate converts a full create payload into an update carrying every field.
func (r CreateTrainingInfoRequest) AsUpdate() UpdateTrainingInfoRequest {
	return UpdateTrainingInfoRequest{
		Gender:             &r.Gender,
		Weight:             &r.Weight,
		Height:             &r.Height,
		BodyFatPercentage:  r.BodyFatPercentage,
		ExperienceLevel:    &r.ExperienceLevel,
		SessionFrequency:   &r.SessionFrequency,
		SessionDuration:    &r.SessionDuration,
		MainGoal:           &r.MainGoal,
		TrainingPreference: &r.TrainingPreference,
		Equipment:          &r.Equipment,
	}
}

// FormatMinutes renders a minute count as "45 min", "1h" or "1h30".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}
