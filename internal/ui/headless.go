package ui

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/fitforge/fitforge-cli/internal/form"
)

// ErrHeadlessNoAnswers is returned when a headless run has nothing to apply
// to an empty form.
var ErrHeadlessNoAnswers = errors.New("ui: headless mode requires an answers file")

// Answers maps form field names to raw values, as read from an answers file:
//
//	gender: FEMALE
//	weight: 61.5
//	height: 168
//	experienceLevel: INTERMEDIATE
type Answers map[form.Field]string

// ParseAnswers decodes a YAML answers document. Scalar values of any YAML
// type are kept as their string form. Unknown keys are rejected.
func ParseAnswers(r io.Reader) (Answers, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Answers{}, nil
		}
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	known := form.Fields()
	out := make(Answers, len(raw))
	for key, node := range raw {
		name := form.Field(key)
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("answers: %w: %q", form.ErrUnknownField, key)
		}
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("answers: %q must be a scalar value", key)
		}
		if node.Tag == "!!null" {
			out[name] = ""
			continue
		}
		out[name] = node.Value
	}
	return out, nil
}

// LoadAnswers reads an answers file.
func LoadAnswers(path string) (Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ParseAnswers(f)
}

// HeadlessManager manages headless (non-interactive) mode detection
// and the answers applied when running without a TTY.
type HeadlessManager struct {
	forced  *bool
	answers Answers
}

// NewHeadlessManager creates a HeadlessManager that detects
// headless mode from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// SetAnswers stores the answers used in headless mode.
func (h *HeadlessManager) SetAnswers(a Answers) {
	if len(a) == 0 {
		h.answers = nil
		return
	}
	h.answers = make(Answers, len(a))
	maps.Copy(h.answers, a)
}

// Answer retrieves one answer. The second return value indicates whether
// the field was answered.
func (h *HeadlessManager) Answer(name form.Field) (string, bool) {
	v, ok := h.answers[name]
	return v, ok
}

// HasAnswers returns true when at least one answer has been set.
func (h *HeadlessManager) HasAnswers() bool {
	return len(h.answers) > 0
}
