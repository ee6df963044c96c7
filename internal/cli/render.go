package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/fitforge/fitforge-cli/internal/ui"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// kvPair is one "Key: value" line of a card.
type kvPair struct {
	Key   string
	Value string
}

// theme returns the theme from deps, or a colored default.
func theme() *ui.Theme {
	if deps != nil && deps.Theme != nil {
		return deps.Theme
	}
	return ui.NewTheme(false)
}

// renderCard renders content inside a rounded border box with a styled title.
func renderCard(title, content string) string {
	th := theme()
	titleLine := th.Style(th.Colors.Primary).Bold(true).Render(title)
	return th.Card(false).Render(titleLine + "\n\n" + content)
}

// renderInfoCard renders a single message in a card.
func renderInfoCard(title, message string) string {
	return renderCard(title, message)
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(title string, details ...string) string {
	th := theme()
	var body strings.Builder
	body.WriteString(th.Style(th.Colors.Success).Render("✓") + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return th.Card(true).Render(body.String())
}

// renderKeyValueLines aligns keys in a column.
func renderKeyValueLines(pairs []kvPair) string {
	th := theme()
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		key := fmt.Sprintf("%-*s", width, p.Key)
		lines[i] = th.Style(th.Colors.Muted).Render(key) + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

// profilePairs lists a training profile with localized labels.
func profilePairs(info *models.TrainingInfo, locale string) []kvPair {
	labels := models.Labels(locale)
	name := func(cat models.Category, token string) string {
		return models.DisplayName(token, labels.Table(cat))
	}

	pairs := []kvPair{
		{"Gender", name(models.CategoryGender, string(info.Gender))},
		{"Weight", formatFloat(info.Weight) + " kg"},
		{"Height", formatFloat(info.Height) + " cm"},
	}
	if info.BodyFatPercentage != nil {
		pairs = append(pairs, kvPair{"Body fat", formatFloat(*info.BodyFatPercentage) + " %"})
	}
	if info.BMI > 0 {
		pairs = append(pairs, kvPair{"BMI", fmt.Sprintf("%.1f", info.BMI)})
	}
	pairs = append(pairs,
		kvPair{"Experience", name(models.CategoryExperienceLevel, string(info.ExperienceLevel))},
		kvPair{"Frequency", name(models.CategorySessionFrequency, string(info.SessionFrequency))},
		kvPair{"Duration", name(models.CategorySessionDuration, string(info.SessionDuration))},
		kvPair{"Main goal", name(models.CategoryMainGoal, string(info.MainGoal))},
		kvPair{"Preference", name(models.CategoryTrainingPreference, string(info.TrainingPreference))},
		kvPair{"Equipment", name(models.CategoryEquipment, string(info.Equipment))},
	)
	return pairs
}

// profileMarkdown renders a training profile as a markdown document.
func profileMarkdown(info *models.TrainingInfo, locale string) string {
	var b strings.Builder
	b.WriteString("# Training profile\n\n")
	b.WriteString("| | |\n|---|---|\n")
	for _, p := range profilePairs(info, locale) {
		fmt.Fprintf(&b, "| **%s** | %s |\n", p.Key, p.Value)
	}
	if info.UpdatedAt != nil {
		fmt.Fprintf(&b, "\n_Last updated %s_\n", info.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}

// renderMarkdown renders md for the terminal. With noColor the markdown
// source is returned as is.
func renderMarkdown(md string, noColor bool) (string, error) {
	if noColor {
		return md, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func formatFloat(n float64) string {
	s := fmt.Sprintf("%.1f", n)
	return strings.TrimSuffix(s, ".0")
}
