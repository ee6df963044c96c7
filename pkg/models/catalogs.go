package models

var catalogs = map[string]*LabelCatalog{
	"en": {
		Locale: "en",
		Gender: LabelTable{
			string(GenderMale):   "Male",
			string(GenderFemale): "Female",
			string(GenderOther):  "Other",
		},
		ExperienceLevel: LabelTable{
			string(ExperienceBeginner):     "Beginner",
			string(ExperienceIntermediate): "Intermediate",
			string(ExperienceAdvanced):     "Advanced",
			string(ExperienceExpert):       "Expert",
		},
		SessionFrequency: LabelTable{
			string(FrequencyOneToTwo):    "1-2 sessions per week",
			string(FrequencyThreeToFour): "3-4 sessions per week",
			string(FrequencyFiveToSix):   "5-6 sessions per week",
			string(FrequencyDaily):       "Every day",
		},
		SessionDuration: LabelTable{
			string(Duration30):  "30 min",
			string(Duration45):  "45 min",
			string(Duration60):  "1h",
			string(Duration90):  "1h30",
			string(Duration120): "2h",
		},
		MainGoal: LabelTable{
			string(GoalWeightLoss):     "Weight loss",
			string(GoalMuscleGain):     "Muscle gain",
			string(GoalStrength):       "Strength",
			string(GoalEndurance):      "Endurance",
			string(GoalGeneralFitness): "General fitness",
			string(GoalFlexibility):    "Flexibility",
		},
		TrainingPreference: LabelTable{
			string(PreferenceStrengthTraining): "Strength training",
			string(PreferenceCardio):           "Cardio",
			string(PreferenceHIIT):             "HIIT",
			string(PreferenceYoga):             "Yoga",
			string(PreferenceCrossfit):         "CrossFit",
			string(PreferenceMixed):            "Mixed",
		},
		Equipment: LabelTable{
			string(EquipmentNone):          "No equipment",
			string(EquipmentBasicHome):     "Basic home equipment",
			string(EquipmentFullHomeGym):   "Full home gym",
			string(EquipmentCommercialGym): "Commercial gym",
		},
	},
	"fr": {
		Locale: "fr",
		Gender: LabelTable{
			string(GenderMale):   "Homme",
			string(GenderFemale): "Femme",
			string(GenderOther):  "Autre",
		},
		ExperienceLevel: LabelTable{
			string(ExperienceBeginner):     "Débutant",
			string(ExperienceIntermediate): "Intermédiaire",
			string(ExperienceAdvanced):     "Avancé",
			string(ExperienceExpert):       "Expert",
		},
		SessionFrequency: LabelTable{
			string(FrequencyOneToTwo):    "1 à 2 séances par semaine",
			string(FrequencyThreeToFour): "3 à 4 séances par semaine",
			string(FrequencyFiveToSix):   "5 à 6 séances par semaine",
			string(FrequencyDaily):       "Tous les jours",
		},
		SessionDuration: LabelTable{
			string(Duration30):  "30 min",
			string(Duration45):  "45 min",
			string(Duration60):  "1h",
			string(Duration90):  "1h30",
			string(Duration120): "2h",
		},
		MainGoal: LabelTable{
			string(GoalWeightLoss):     "Perte de poids",
			string(GoalMuscleGain):     "Prise de muscle",
			string(GoalStrength):       "Force",
			string(GoalEndurance):      "Endurance",
			string(GoalGeneralFitness): "Forme générale",
			string(GoalFlexibility):    "Souplesse",
		},
		TrainingPreference: LabelTable{
			string(PreferenceStrengthTraining): "Musculation",
			string(PreferenceCardio):           "Cardio",
			string(PreferenceHIIT):             "HIIT",
			string(PreferenceYoga):             "Yoga",
			string(PreferenceCrossfit):         "CrossFit",
			string(PreferenceMixed):            "Mixte",
		},
		Equipment: LabelTable{
			string(EquipmentNone):          "Aucun équipement",
			string(EquipmentBasicHome):     "Équipement de base à domicile",
			string(EquipmentFullHomeGym):   "Salle complète à domicile",
			string(EquipmentCommercialGym): "Salle de sport",
		},
	},
}
