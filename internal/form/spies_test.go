package form

import (
	"context"
	"sync"

	"github.com/fitforge/fitforge-cli/pkg/models"
)

// spyService records calls and returns canned results.
type spyService struct {
	mu sync.Mutex

	exists    bool
	existsErr error
	info      *models.TrainingInfo
	getErr    error
	saveErr   error

	existsCalls int
	getCalls    int
	creates     []models.CreateTrainingInfoRequest
	updates     []models.UpdateTrainingInfoRequest

	// block, when set, is waited on inside Create/Update.
	block chan struct{}
	// entered is closed once Create/Update starts.
	entered chan struct{}
}

func (s *spyService) Exists(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.existsCalls++
	return s.exists, s.existsErr
}

func (s *spyService) Get(_ context.Context) (*models.TrainingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.info, nil
}

func (s *spyService) Create(_ context.Context, req models.CreateTrainingInfoRequest) (*models.TrainingInfo, error) {
	s.mu.Lock()
	s.creates = append(s.creates, req)
	s.mu.Unlock()
	s.wait()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	return &models.TrainingInfo{Gender: req.Gender, Weight: req.Weight, Height: req.Height}, nil
}

func (s *spyService) Update(_ context.Context, req models.UpdateTrainingInfoRequest) (*models.TrainingInfo, error) {
	s.mu.Lock()
	s.updates = append(s.updates, req)
	s.mu.Unlock()
	s.wait()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	return s.info, nil
}

func (s *spyService) Delete(_ context.Context) error { return nil }

func (s *spyService) GetByUser(_ context.Context, _ int64) (*models.TrainingInfo, error) {
	return s.info, nil
}

func (s *spyService) wait() {
	if s.entered != nil {
		close(s.entered)
	}
	if s.block != nil {
		<-s.block
	}
}

func (s *spyService) calls() (creates, updates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.creates), len(s.updates)
}

// spyNavigator records navigation calls.
type spyNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *spyNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *spyNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func ptr[T any](v T) *T { return &v }

// sampleInfo is a complete, valid record.
func sampleInfo() models.TrainingInfo {
	return models.TrainingInfo{
		ID:                 ptr(int64(3)),
		UserID:             ptr(int64(42)),
		Gender:             models.GenderFemale,
		Weight:             61.5,
		Height:             168,
		BodyFatPercentage:  ptr(22.0),
		ExperienceLevel:    models.ExperienceIntermediate,
		SessionFrequency:   models.FrequencyThreeToFour,
		SessionDuration:    models.Duration60,
		MainGoal:           models.GoalEndurance,
		TrainingPreference: models.PreferenceCardio,
		Equipment:          models.EquipmentBasicHome,
		BMI:                21.8,
	}
}

// fillValid populates every required field with valid values.
func fillValid(f *Form) {
	_ = f.SetValue(FieldGender, "MALE")
	_ = f.SetValue(FieldWeight, "80")
	_ = f.SetValue(FieldHeight, "180")
	_ = f.SetValue(FieldExperienceLevel, "BEGINNER")
	_ = f.SetValue(FieldSessionFrequency, "ONE_TO_TWO")
	_ = f.SetValue(FieldSessionDuration, "MINUTES_45")
	_ = f.SetValue(FieldMainGoal, "STRENGTH")
	_ = f.SetValue(FieldTrainingPreference, "HIIT")
	_ = f.SetValue(FieldEquipment, "NONE")
}
