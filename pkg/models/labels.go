package models

import (
	"golang.org/x/text/language"
)

// Category names one enumerated field family.
type Category string

const (
	CategoryGender             Category = "gender"
	CategoryExperienceLevel    Category = "experienceLevel"
	CategorySessionFrequency   Category = "sessionFrequency"
	CategorySessionDuration    Category = "sessionDuration"
	CategoryMainGoal           Category = "mainGoal"
	CategoryTrainingPreference Category = "trainingPreference"
	CategoryEquipment          Category = "equipment"
)

// Categories returns every category in form order.
func Categories() []Category {
	return []Category{
		CategoryGender, CategoryExperienceLevel, CategorySessionFrequency,
		CategorySessionDuration, CategoryMainGoal, CategoryTrainingPreference,
		CategoryEquipment,
	}
}

// Tokens returns the ordered valid tokens of the category.
// Unknown categories return nil.
func (c Category) Tokens() []string {
	switch c {
	case CategoryGender:
		return tokens(GenderValues())
	case CategoryExperienceLevel:
		return tokens(ExperienceLevelValues())
	case CategorySessionFrequency:
		return tokens(SessionFrequencyValues())
	case CategorySessionDuration:
		return tokens(SessionDurationValues())
	case CategoryMainGoal:
		return tokens(MainGoalValues())
	case CategoryTrainingPreference:
		return tokens(TrainingPreferenceValues())
	case CategoryEquipment:
		return tokens(EquipmentValues())
	}
	return nil
}

// LabelTable maps enum tokens to display labels.
type LabelTable map[string]string

// LabelCatalog holds one label table per category for a single locale.
type LabelCatalog struct {
	Locale             string
	Gender             LabelTable
	ExperienceLevel    LabelTable
	SessionFrequency   LabelTable
	SessionDuration    LabelTable
	MainGoal           LabelTable
	TrainingPreference LabelTable
	Equipment          LabelTable
}

// Table returns the label table of the given category.
// Unknown categories yield an empty table, so lookups fall back to the token.
func (c *LabelCatalog) Table(cat Category) LabelTable {
	switch cat {
	case CategoryGender:
		return c.Gender
	case CategoryExperienceLevel:
		return c.ExperienceLevel
	case CategorySessionFrequency:
		return c.SessionFrequency
	case CategorySessionDuration:
		return c.SessionDuration
	case CategoryMainGoal:
		return c.MainGoal
	case CategoryTrainingPreference:
		return c.TrainingPreference
	case CategoryEquipment:
		return c.Equipment
	}
	return LabelTable{}
}

// DisplayName returns the label of token in table.
// Unknown tokens are returned unchanged.
func DisplayName(token string, table LabelTable) string {
	if label, ok := table[token]; ok && label != "" {
		return label
	}
	return token
}

// DefaultLocale is used when no supported locale matches.
const DefaultLocale = "en"

// supportedTags must list DefaultLocale first; the matcher falls back to index 0.
var supportedTags = []language.Tag{language.English, language.French}

var localeMatcher = language.NewMatcher(supportedTags)

// SupportedLocales returns the locale codes that have label catalogs.
func SupportedLocales() []string {
	out := make([]string, len(supportedTags))
	for i, t := range supportedTags {
		base, _ := t.Base()
		out[i] = base.String()
	}
	return out
}

// MatchLocale resolves a user-supplied locale ("fr-CA", "en_US", "de")
// to the closest supported locale code.
func MatchLocale(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// IsSupportedLocale reports whether locale resolves to a catalog
// other than through the English fallback.
func IsSupportedLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, conf := localeMatcher.Match(tag)
	return conf != language.No
}

// Labels returns the label catalog for the closest supported locale.
func Labels(locale string) *LabelCatalog {
	if c, ok := catalogs[MatchLocale(locale)]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}
