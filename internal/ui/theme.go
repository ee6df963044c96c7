// Package ui renders the training-info wizard in the terminal. Interactive
// sessions use one huh form per step; headless sessions apply answers from a
// YAML file and print plain progress lines.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark-background variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Palette groups the adaptive colors used by styles.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
}

// Theme carries the palette and the no-color switch.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme creates the fitforge theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary: lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary},
			Success: lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess},
			Error:   lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError},
			Text:    lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText},
			Muted:   lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted},
			Border:  lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder},
		},
	}
}

// Style returns a foreground style, or a plain style in no-color mode.
func (t *Theme) Style(c lipgloss.AdaptiveColor) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Card returns a rounded bordered box style.
func (t *Theme) Card(success bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if t.NoColor {
		return s
	}
	if success {
		return s.BorderForeground(t.Colors.Success)
	}
	return s.BorderForeground(t.Colors.Border)
}

// Huh returns a huh.Theme matching the palette.
func (t *Theme) Huh() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}

	h := huh.ThemeBase()
	c := t.Colors
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}

	h.Focused.Base = h.Focused.Base.BorderForeground(c.Border)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(c.Primary).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.Foreground(c.Primary).Bold(true).MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(c.Muted)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(c.Error)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(c.Error)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(c.Primary).SetString("▸ ")
	h.Focused.NextIndicator = h.Focused.NextIndicator.Foreground(c.Primary)
	h.Focused.PrevIndicator = h.Focused.PrevIndicator.Foreground(c.Primary)
	h.Focused.Option = h.Focused.Option.Foreground(c.Text)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(c.Success)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(c.Success).SetString("◆ ")
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(c.Text)
	h.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(c.Muted).SetString("◇ ")
	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(c.Primary)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(c.Muted)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(secondary)
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(c.Primary)
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(c.Text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	h.Focused.Next = h.Focused.FocusedButton

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.NextIndicator = lipgloss.NewStyle()
	h.Blurred.PrevIndicator = lipgloss.NewStyle()

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
