package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows that a request is in flight.
type Spinner interface {
	Stop()
}

// NewSpinner starts a spinner with the given title. In headless or
// no-color mode it prints the title as a plain line to w instead.
func NewSpinner(theme *Theme, hm *HeadlessManager, w io.Writer, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(title, w)
	}
	return newInteractiveSpinner(theme, title, w)
}

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(theme.Colors.Primary)
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

// The program runs in its own goroutine until Stop sends spinnerStopMsg.
func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title), tea.WithOutput(w))
	s := &interactiveSpinner{program: p}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return &headlessSpinner{}
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {
	s.stopped = true
}
