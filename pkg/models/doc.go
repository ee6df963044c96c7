// Package models provides the shared data models of the fitforge client.
//
// It holds the closed enumerations used by training profiles, the
// TrainingInfo record and its create/update request shapes, and the
// localized display-name catalogs shown next to each enumerated value.
//
// # Enumerations
//
// Each category is a named string type with an ordered value set:
//
//	g := models.GenderFemale
//	if g.IsValid() {
//	    fmt.Println(models.DisplayName(string(g), models.Labels("fr").Gender))
//	}
//
// # Locales
//
// Label catalogs exist for English and French. [Labels] picks the closest
// supported locale and falls back to English.
package models
