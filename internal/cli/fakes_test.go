package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fitforge/fitforge-cli/internal/auth"
	"github.com/fitforge/fitforge-cli/internal/config"
	"github.com/fitforge/fitforge-cli/internal/ui"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// memCreds is an in-memory credential store.
type memCreds struct {
	creds   *auth.Credentials
	deleted int
}

func (m *memCreds) Load() (*auth.Credentials, error) {
	if m.creds == nil {
		return nil, auth.ErrNotLoggedIn
	}
	c := *m.creds
	return &c, nil
}

func (m *memCreds) Save(c *auth.Credentials) error {
	cp := *c
	m.creds = &cp
	return nil
}

func (m *memCreds) Delete() error {
	m.creds = nil
	m.deleted++
	return nil
}

// fakeAuth records the last login or sign-up.
type fakeAuth struct {
	err       error
	lastEmail string
	lastPass  string
	lastReg   auth.RegisterRequest
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*auth.Credentials, error) {
	f.lastEmail, f.lastPass = email, password
	if f.err != nil {
		return nil, f.err
	}
	return &auth.Credentials{Token: "tok-login", UserID: 7, Email: email}, nil
}

func (f *fakeAuth) Register(_ context.Context, req auth.RegisterRequest) (*auth.Credentials, error) {
	f.lastReg = req
	if f.err != nil {
		return nil, f.err
	}
	return &auth.Credentials{Token: "tok-signup", UserID: 8, Email: req.Email}, nil
}

// fakeTraining is an in-memory training-info API.
type fakeTraining struct {
	mu       sync.Mutex
	existing *models.TrainingInfo
	err      error // returned by every call when set
	deleted  bool

	creates []models.CreateTrainingInfoRequest
	updates []models.UpdateTrainingInfoRequest
	byUser  []int64
}

func (f *fakeTraining) Exists(context.Context) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing != nil, nil
}

func (f *fakeTraining) Get(context.Context) (*models.TrainingInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

func (f *fakeTraining) Create(_ context.Context, req models.CreateTrainingInfoRequest) (*models.TrainingInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.TrainingInfo{
		Gender: req.Gender, Weight: req.Weight, Height: req.Height,
		ExperienceLevel: req.ExperienceLevel, SessionFrequency: req.SessionFrequency,
		SessionDuration: req.SessionDuration, MainGoal: req.MainGoal,
		TrainingPreference: req.TrainingPreference, Equipment: req.Equipment,
	}, nil
}

func (f *fakeTraining) Update(_ context.Context, req models.UpdateTrainingInfoRequest) (*models.TrainingInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

func (f *fakeTraining) Delete(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	return nil
}

func (f *fakeTraining) GetByUser(_ context.Context, userID int64) (*models.TrainingInfo, error) {
	f.byUser = append(f.byUser, userID)
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

// testDeps installs headless, colorless dependencies for the duration of t.
func testDeps(t *testing.T) *Dependencies {
	t.Helper()

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)

	d := &Dependencies{
		Settings: config.NewDefaultConfig(),
		Creds:    &memCreds{creds: &auth.Credentials{Token: "tok", UserID: 7, Email: "ana@example.com"}},
		Training: &fakeTraining{},
		Auth:     &fakeAuth{},
		Theme:    ui.NewTheme(true),
		Headless: hm,
	}
	prev := deps
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return d
}

// runCmd executes cmd with args and returns the combined output.
func runCmd(t *testing.T, cmd *cobra.Command, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func sampleInfo() *models.TrainingInfo {
	bodyFat := 22.5
	return &models.TrainingInfo{
		Gender:             models.GenderFemale,
		Weight:             58.5,
		Height:             165,
		BodyFatPercentage:  &bodyFat,
		ExperienceLevel:    models.ExperienceBeginner,
		SessionFrequency:   models.FrequencyThreeToFour,
		SessionDuration:    models.Duration45,
		MainGoal:           models.GoalWeightLoss,
		TrainingPreference: models.PreferenceYoga,
		Equipment:          models.EquipmentNone,
		BMI:                21.5,
	}
}
