package ui

import (
	"context"
	"sync"

	"github.com/fitforge/fitforge-cli/internal/form"
	"github.com/fitforge/fitforge-cli/pkg/models"
)

// fakeService is an in-memory training-info API.
type fakeService struct {
	mu       sync.Mutex
	existing *models.TrainingInfo
	initErr  error
	saveErrs []error // consumed one per Create/Update

	creates []models.CreateTrainingInfoRequest
	updates []models.UpdateTrainingInfoRequest
}

func (s *fakeService) Exists(context.Context) (bool, error) {
	if s.initErr != nil {
		return false, s.initErr
	}
	return s.existing != nil, nil
}

func (s *fakeService) Get(context.Context) (*models.TrainingInfo, error) {
	return s.existing, nil
}

func (s *fakeService) nextErr() error {
	if len(s.saveErrs) == 0 {
		return nil
	}
	err := s.saveErrs[0]
	s.saveErrs = s.saveErrs[1:]
	return err
}

func (s *fakeService) Create(_ context.Context, req models.CreateTrainingInfoRequest) (*models.TrainingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates = append(s.creates, req)
	if err := s.nextErr(); err != nil {
		return nil, err
	}
	return &models.TrainingInfo{Gender: req.Gender, Weight: req.Weight, Height: req.Height}, nil
}

func (s *fakeService) Update(_ context.Context, req models.UpdateTrainingInfoRequest) (*models.TrainingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, req)
	if err := s.nextErr(); err != nil {
		return nil, err
	}
	return s.existing, nil
}

func (s *fakeService) Delete(context.Context) error { return nil }

func (s *fakeService) GetByUser(context.Context, int64) (*models.TrainingInfo, error) {
	return s.existing, nil
}

// routeRecorder records navigation.
type routeRecorder struct{ routes []string }

func (r *routeRecorder) Navigate(route string) { r.routes = append(r.routes, route) }

func testTheme() *Theme { return NewTheme(true) }

func headlessManager(a Answers) *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	hm.SetAnswers(a)
	return hm
}

func validAnswers() Answers {
	return Answers{
		form.FieldGender:             "FEMALE",
		form.FieldWeight:             "58.5",
		form.FieldHeight:             "165",
		form.FieldExperienceLevel:    "BEGINNER",
		form.FieldSessionFrequency:   "THREE_TO_FOUR",
		form.FieldSessionDuration:    "MINUTES_45",
		form.FieldMainGoal:           "WEIGHT_LOSS",
		form.FieldTrainingPreference: "YOGA",
		form.FieldEquipment:          "NONE",
	}
}
