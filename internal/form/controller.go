package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fitforge/fitforge-cli/internal/trainingapi"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// ErrSubmitInProgress is returned when OnSubmit is called while a previous
// submission is still in flight.
var ErrSubmitInProgress = errors.New("form: submission already in progress")

// Controller drives one training-info form session: mode resolution,
// step navigation, submission and error mapping.
//
// State is guarded by a mutex, but the controller is meant to be driven by
// a single sequence of user events.
type Controller struct {
	mu sync.Mutex

	form   *Form
	steps  *Stepper
	svc    trainingapi.Service
	nav    Navigator
	logger *slog.Logger

	editMode      bool
	seeded        bool
	revealOnPatch bool
	existing      *models.TrainingInfo
	saved         *models.TrainingInfo
	state         SubmissionState
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates the form controller for the signed-in user.
// Call Init to resolve create or update mode.
func NewController(svc trainingapi.Service, nav Navigator, opts ...ControllerOption) *Controller {
	f := New()
	c := &Controller{
		form:   f,
		steps:  NewStepper(f),
		svc:    svc,
		nav:    nav,
		logger: slog.New(slog.DiscardHandler),
		state:  Idle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewEditController creates the edit-dialog variant. It is seeded with an
// existing record, always submits updates, and marks every field touched
// after patching so invalid server data shows up immediately.
func NewEditController(svc trainingapi.Service, nav Navigator, existing models.TrainingInfo, opts ...ControllerOption) *Controller {
	c := NewController(svc, nav, opts...)
	c.revealOnPatch = true
	c.seeded = true
	c.applyExisting(&existing)
	return c
}

// Form returns the underlying form model.
func (c *Controller) Form() *Form { return c.form }

// Steps returns the step navigation machine.
func (c *Controller) Steps() *Stepper { return c.steps }

// Init resolves create or update mode. If a record exists it is fetched and
// patched into the form. Failures are mapped like submit failures and
// returned.
func (c *Controller) Init(ctx context.Context) error {
	if c.seeded {
		return nil
	}

	exists, err := c.svc.Exists(ctx)
	if err != nil {
		return c.fail("existence check", err)
	}
	if !exists {
		c.mu.Lock()
		c.editMode = false
		c.mu.Unlock()
		c.logger.Debug("no training info yet, create mode")
		return nil
	}

	c.mu.Lock()
	c.editMode = true
	c.mu.Unlock()

	info, err := c.svc.Get(ctx)
	if err != nil {
		return c.fail("load training info", err)
	}
	c.mu.Lock()
	c.applyExisting(info)
	c.mu.Unlock()
	c.logger.Debug("training info loaded, edit mode")
	return nil
}

// applyExisting must be called with c.mu held or before the controller is shared.
func (c *Controller) applyExisting(info *models.TrainingInfo) {
	c.editMode = true
	c.existing = info
	c.form.Patch(*info)
	if c.revealOnPatch {
		c.form.MarkAllTouched()
	}
}

// SelectOption sets a field from a picker, marks it touched, and clears the
// error banner.
func (c *Controller) SelectOption(name Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.form.SetValue(name, value); err != nil {
		return err
	}
	c.form.Touch(name)
	if c.state.Status() == StatusFailed {
		c.state = Idle()
	}
	return nil
}

// SetField records typed input for a field and marks it touched.
func (c *Controller) SetField(name Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.form.SetValue(name, value); err != nil {
		return err
	}
	c.form.Touch(name)
	return nil
}

// NextStep advances when the current step is valid.
func (c *Controller) NextStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps.NextStep()
}

// PreviousStep goes back one step.
func (c *Controller) PreviousStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps.PreviousStep()
}

// OnSubmit validates and sends the form.
//
// An invalid form marks every field touched and returns ErrFormInvalid
// without any network call. A valid form is sent as a create or an update
// depending on mode. Success navigates to the dashboard. Failure stores the
// mapped message, and a 401 also navigates to the login route.
func (c *Controller) OnSubmit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.IsLoading() {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	if !c.form.Valid() {
		c.form.MarkAllTouched()
		c.mu.Unlock()
		return ErrFormInvalid
	}

	req, err := c.form.CreateRequest()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	editMode := c.editMode
	c.state = Submitting()
	c.mu.Unlock()

	var saved *models.TrainingInfo
	if editMode {
		c.logger.Debug("submitting training info update")
		saved, err = c.svc.Update(ctx, req.AsUpdate())
	} else {
		c.logger.Debug("submitting new training info")
		saved, err = c.svc.Create(ctx, req)
	}
	if err != nil {
		return c.fail("submit", err)
	}

	c.mu.Lock()
	c.state = Succeeded()
	c.saved = saved
	c.mu.Unlock()

	if c.nav != nil {
		c.nav.Navigate(RouteDashboard)
	}
	return nil
}

// fail records a mapped failure, performs any redirect, and wraps err.
func (c *Controller) fail(op string, err error) error {
	out := MapError(err)

	c.mu.Lock()
	c.state = Failed(out.Message)
	c.mu.Unlock()

	c.logger.Warn("training info request failed", "op", op, "status", out.Status, "error", err)
	if out.RedirectLogin && c.nav != nil {
		c.nav.Navigate(RouteLogin)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// State returns the submission state.
func (c *Controller) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsLoading reports whether a request is in flight.
func (c *Controller) IsLoading() bool {
	return c.State().IsLoading()
}

// Error returns the current error banner, or "".
func (c *Controller) Error() string {
	return c.State().Reason()
}

// IsEditMode reports whether submit sends an update.
func (c *Controller) IsEditMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editMode
}

// Existing returns the record loaded in edit mode, or nil.
func (c *Controller) Existing() *models.TrainingInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.existing
}

// Saved returns the record returned by the last successful submit, or nil.
func (c *Controller) Saved() *models.TrainingInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved
}

// CurrentStep returns the active step.
func (c *Controller) CurrentStep() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps.Current()
}

// IsStepValid reports whether step n is valid.
func (c *Controller) IsStepValid(n Step) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps.IsStepValid(n)
}

// IsFieldInvalid reports whether a touched field fails validation.
func (c *Controller) IsFieldInvalid(name Field) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.IsFieldInvalid(name)
}
