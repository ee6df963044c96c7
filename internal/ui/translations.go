package ui

import (
	"fmt"

	"github.com/fitforge/fitforge-cli/internal/form"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// FieldText holds the title and help line of one form control.
type FieldText struct {
	Title       string
	Description string
}

// Strings holds the translated wizard texts of one locale.
type Strings struct {
	StepTitles map[form.Step]string
	Fields     map[form.Field]FieldText

	Next   string
	Back   string
	Submit string
	Action string

	Loading        string
	Saving         string
	StepProgress   string // format: current, total
	StepBlocked    string // format: step number
	EditModeNote   string
	CreateModeNote string

	ErrRequired string
	ErrMin      string // format: limit
	ErrMax      string // format: limit
	ErrNumber   string
	ErrOption   string
}

var translations = map[string]*Strings{
	"en": {
		StepTitles: map[form.Step]string{
			form.Step1: "About you",
			form.Step2: "Your experience",
			form.Step3: "Your goals",
			form.Step4: "Your equipment",
		},
		Fields: map[form.Field]FieldText{
			form.FieldGender:             {Title: "Gender"},
			form.FieldWeight:             {Title: "Weight (kg)", Description: "Between 30 and 300."},
			form.FieldHeight:             {Title: "Height (cm)", Description: "Between 100 and 250."},
			form.FieldBodyFatPercentage:  {Title: "Body fat (%)", Description: "Optional, between 3 and 50."},
			form.FieldExperienceLevel:    {Title: "Experience level"},
			form.FieldSessionFrequency:   {Title: "Sessions per week"},
			form.FieldSessionDuration:    {Title: "Session duration"},
			form.FieldMainGoal:           {Title: "Main goal"},
			form.FieldTrainingPreference: {Title: "Preferred training"},
			form.FieldEquipment:          {Title: "Available equipment"},
		},
		Next:           "Next",
		Back:           "Back",
		Submit:         "Submit",
		Action:         "Continue",
		Loading:        "Loading your training profile...",
		Saving:         "Saving your training profile...",
		StepProgress:   "Step %d of %d",
		StepBlocked:    "step %d is incomplete",
		EditModeNote:   "Updating your existing training profile.",
		CreateModeNote: "Creating your training profile.",
		ErrRequired:    "This field is required",
		ErrMin:         "Must be at least %s",
		ErrMax:         "Must be at most %s",
		ErrNumber:      "Enter a number",
		ErrOption:      "Pick one of the listed options",
	},
	"fr": {
		StepTitles: map[form.Step]string{
			form.Step1: "À propos de vous",
			form.Step2: "Votre expérience",
			form.Step3: "Vos objectifs",
			form.Step4: "Votre équipement",
		},
		Fields: map[form.Field]FieldText{
			form.FieldGender:             {Title: "Genre"},
			form.FieldWeight:             {Title: "Poids (kg)", Description: "Entre 30 et 300."},
			form.FieldHeight:             {Title: "Taille (cm)", Description: "Entre 100 et 250."},
			form.FieldBodyFatPercentage:  {Title: "Masse grasse (%)", Description: "Facultatif, entre 3 et 50."},
			form.FieldExperienceLevel:    {Title: "Niveau d'expérience"},
			form.FieldSessionFrequency:   {Title: "Séances par semaine"},
			form.FieldSessionDuration:    {Title: "Durée des séances"},
			form.FieldMainGoal:           {Title: "Objectif principal"},
			form.FieldTrainingPreference: {Title: "Entraînement préféré"},
			form.FieldEquipment:          {Title: "Équipement disponible"},
		},
		Next:           "Suivant",
		Back:           "Retour",
		Submit:         "Valider",
		Action:         "Continuer",
		Loading:        "Chargement de votre profil...",
		Saving:         "Enregistrement de votre profil...",
		StepProgress:   "Étape %d sur %d",
		StepBlocked:    "l'étape %d est incomplète",
		EditModeNote:   "Mise à jour de votre profil existant.",
		CreateModeNote: "Création de votre profil.",
		ErrRequired:    "Ce champ est obligatoire",
		ErrMin:         "Doit être au moins %s",
		ErrMax:         "Doit être au plus %s",
		ErrNumber:      "Saisissez un nombre",
		ErrOption:      "Choisissez une option de la liste",
	},
}

// StringsFor returns the texts of the closest supported locale.
func StringsFor(locale string) *Strings {
	if s, ok := translations[models.MatchLocale(locale)]; ok {
		return s
	}
	return translations[models.DefaultLocale]
}

// FieldError returns the localized message of a validation failure.
func (s *Strings) FieldError(e form.FieldError) string {
	switch e.Kind {
	case form.ErrKindRequired:
		return s.ErrRequired
	case form.ErrKindMin:
		return fmt.Sprintf(s.ErrMin, formatLimit(e.Limit))
	case form.ErrKindMax:
		return fmt.Sprintf(s.ErrMax, formatLimit(e.Limit))
	case form.ErrKindNumber:
		return s.ErrNumber
	case form.ErrKindOption:
		return s.ErrOption
	}
	return e.Error()
}

func formatLimit(n float64) string {
	return fmt.Sprintf("%g", n)
}
