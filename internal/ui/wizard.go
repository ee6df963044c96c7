package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/fitforge/fitforge-cli/internal/form"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// Sentinel errors for wizard runs.
var (
	// ErrCancelled is returned when the user aborts a form with Ctrl-C.
	ErrCancelled = errors.New("ui: wizard cancelled")

	// ErrStepIncomplete is returned in headless mode when the answers leave
	// a step invalid.
	ErrStepIncomplete = errors.New("ui: step incomplete")
)

// stepAction is the navigation choice at the end of a step.
type stepAction int

const (
	actionNext stepAction = iota
	actionBack
	actionSubmit
)

// Wizard drives a form.Controller from the terminal.
type Wizard struct {
	ctrl     *form.Controller
	theme    *Theme
	headless *HeadlessManager
	locale   string
	text     *Strings
	out      io.Writer
	logger   *slog.Logger

	// askStep shows one step and returns the navigation choice.
	askStep func(ctx context.Context, step form.Step) (stepAction, error)
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithOutput sets where progress lines and banners are written.
func WithOutput(w io.Writer) WizardOption {
	return func(wz *Wizard) {
		if w != nil {
			wz.out = w
		}
	}
}

// WithLocale selects the label catalog and wizard texts.
func WithLocale(locale string) WizardOption {
	return func(wz *Wizard) {
		wz.locale = models.MatchLocale(locale)
		wz.text = StringsFor(wz.locale)
	}
}

// WithLogger sets the wizard logger.
func WithLogger(l *slog.Logger) WizardOption {
	return func(wz *Wizard) {
		if l != nil {
			wz.logger = l
		}
	}
}

// NewWizard creates a wizard for ctrl.
func NewWizard(ctrl *form.Controller, theme *Theme, hm *HeadlessManager, opts ...WizardOption) *Wizard {
	w := &Wizard{
		ctrl:     ctrl,
		theme:    theme,
		headless: hm,
		locale:   models.DefaultLocale,
		text:     StringsFor(models.DefaultLocale),
		out:      os.Stdout,
		logger:   slog.New(slog.DiscardHandler),
	}
	w.askStep = w.runStepForm
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run resolves create or update mode, collects the answers, and submits.
// It returns nil once the controller has navigated to the dashboard.
func (w *Wizard) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sp := NewSpinner(w.theme, w.headless, w.out, w.text.Loading)
	err := w.ctrl.Init(ctx)
	sp.Stop()
	if err != nil {
		return err
	}

	note := w.text.CreateModeNote
	if w.ctrl.IsEditMode() {
		note = w.text.EditModeNote
	}
	_, _ = fmt.Fprintln(w.out, w.theme.Style(w.theme.Colors.Muted).Render(note))

	if w.headless.IsHeadless() {
		return w.runHeadless(ctx)
	}
	return w.runInteractive(ctx)
}

// runHeadless applies stored answers, walks the steps, and submits.
func (w *Wizard) runHeadless(ctx context.Context) error {
	if !w.headless.HasAnswers() && !w.ctrl.IsEditMode() {
		return ErrHeadlessNoAnswers
	}

	for _, name := range form.Fields() {
		v, ok := w.headless.Answer(name)
		if !ok {
			continue
		}
		if err := w.ctrl.SelectOption(name, v); err != nil {
			return err
		}
	}

	for !w.ctrl.Steps().IsLast() {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := w.ctrl.CurrentStep()
		if !w.ctrl.NextStep() {
			return fmt.Errorf("%w: %s: %s", ErrStepIncomplete,
				fmt.Sprintf(w.text.StepBlocked, step), w.describeInvalid(step))
		}
		w.logger.Debug("headless step complete", "step", step)
	}

	if !w.ctrl.IsStepValid(form.Step4) {
		return fmt.Errorf("%w: %s: %s", ErrStepIncomplete,
			fmt.Sprintf(w.text.StepBlocked, form.Step4), w.describeInvalid(form.Step4))
	}
	return w.submit(ctx)
}

// runInteractive shows one form per step until the submission succeeds or
// fails with a redirect to login.
func (w *Wizard) runInteractive(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		step := w.ctrl.CurrentStep()
		action, err := w.askStep(ctx, step)
		if err != nil {
			return err
		}

		switch action {
		case actionBack:
			w.ctrl.PreviousStep()
		case actionNext:
			if !w.ctrl.NextStep() {
				w.logger.Debug("step invalid, showing again", "step", step)
			}
		case actionSubmit:
			err := w.submit(ctx)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, form.ErrFormInvalid):
				w.rewindToInvalid()
			case form.MapError(err).RedirectLogin:
				return err
			default:
				w.banner(w.ctrl.Error())
			}
		}
	}
}

// submit runs OnSubmit behind a spinner.
func (w *Wizard) submit(ctx context.Context) error {
	sp := NewSpinner(w.theme, w.headless, w.out, w.text.Saving)
	err := w.ctrl.OnSubmit(ctx)
	sp.Stop()
	return err
}

// rewindToInvalid steps back to the step holding the first invalid field.
func (w *Wizard) rewindToInvalid() {
	f := w.ctrl.Form()
	for _, name := range form.Fields() {
		if f.FieldValid(name) {
			continue
		}
		target, ok := form.StepOf(name)
		if !ok {
			return
		}
		for w.ctrl.CurrentStep() > target {
			if !w.ctrl.PreviousStep() {
				break
			}
		}
		return
	}
}

func (w *Wizard) banner(msg string) {
	if msg == "" {
		return
	}
	_, _ = fmt.Fprintln(w.out, w.theme.Style(w.theme.Colors.Error).Render("✗ "+msg))
}

// describeInvalid lists the failing fields of a step with their messages.
func (w *Wizard) describeInvalid(step form.Step) string {
	var parts []string
	f := w.ctrl.Form()
	for _, name := range form.StepFields(step) {
		errs := f.Errors(name)
		if len(errs) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, w.text.FieldError(errs[0])))
	}
	return strings.Join(parts, "; ")
}

// runStepForm renders the step as a single huh form.
func (w *Wizard) runStepForm(ctx context.Context, step form.Step) (stepAction, error) {
	action := actionNext
	if step == form.Step4 {
		action = actionSubmit
	}

	f := huh.NewForm(w.buildStepGroup(step, &action)).
		WithTheme(w.theme.Huh()).
		WithAccessible(false)

	if err := f.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrCancelled
		}
		return 0, fmt.Errorf("wizard error: %w", err)
	}
	return action, nil
}

// buildStepGroup creates the huh.Group of one step: its fields followed by
// the navigation choice.
func (w *Wizard) buildStepGroup(step form.Step, action *stepAction) *huh.Group {
	var fields []huh.Field
	for _, name := range form.StepFields(step) {
		if _, ok := w.ctrl.Form().Category(name); ok {
			fields = append(fields, w.buildSelectField(name))
		} else {
			fields = append(fields, w.buildInputField(name))
		}
	}
	fields = append(fields, huh.NewSelect[stepAction]().
		Title(w.text.Action).
		Options(w.actionOptions(step)...).
		Value(action))

	desc := fmt.Sprintf(w.text.StepProgress, int(step), len(form.Steps()))
	if msg := w.ctrl.Error(); msg != "" {
		desc += "\n" + msg
	}
	return huh.NewGroup(fields...).
		Title(w.text.StepTitles[step]).
		Description(desc)
}

func (w *Wizard) actionOptions(step form.Step) []huh.Option[stepAction] {
	forward := huh.NewOption(w.text.Next, actionNext)
	if step == form.Step4 {
		forward = huh.NewOption(w.text.Submit, actionSubmit)
	}
	if step == form.Step1 {
		return []huh.Option[stepAction]{forward}
	}
	return []huh.Option[stepAction]{forward, huh.NewOption(w.text.Back, actionBack)}
}

// selectOptions returns the localized choices of an enumerated field.
func (w *Wizard) selectOptions(name form.Field) []huh.Option[string] {
	cat, ok := w.ctrl.Form().Category(name)
	if !ok {
		return nil
	}
	table := models.Labels(w.locale).Table(cat)
	tokens := cat.Tokens()
	opts := make([]huh.Option[string], len(tokens))
	for i, tok := range tokens {
		opts[i] = huh.NewOption(models.DisplayName(tok, table), tok)
	}
	return opts
}

// fieldTitle is the localized title, marked with an asterisk when the
// field is required.
func (w *Wizard) fieldTitle(name form.Field) string {
	title := w.text.Fields[name].Title
	if w.ctrl.Form().IsRequired(name) {
		title += " *"
	}
	return title
}

func (w *Wizard) buildSelectField(name form.Field) *huh.Select[string] {
	value := w.ctrl.Form().Value(name)
	txt := w.text.Fields[name]
	return huh.NewSelect[string]().
		Title(w.fieldTitle(name)).
		Description(txt.Description).
		Options(w.selectOptions(name)...).
		Value(&value).
		Validate(func(v string) error {
			return w.apply(name, v, true)
		})
}

func (w *Wizard) buildInputField(name form.Field) *huh.Input {
	value := w.ctrl.Form().Value(name)
	txt := w.text.Fields[name]
	return huh.NewInput().
		Title(w.fieldTitle(name)).
		Description(txt.Description).
		Value(&value).
		Validate(func(v string) error {
			return w.apply(name, v, false)
		})
}

// apply stores a value through the controller and returns the localized
// validation error of the field, if any.
func (w *Wizard) apply(name form.Field, value string, option bool) error {
	var err error
	if option {
		err = w.ctrl.SelectOption(name, value)
	} else {
		err = w.ctrl.SetField(name, value)
	}
	if err != nil {
		return err
	}
	if errs := w.ctrl.Form().Errors(name); len(errs) > 0 {
		return errors.New(w.text.FieldError(errs[0]))
	}
	return nil
}
