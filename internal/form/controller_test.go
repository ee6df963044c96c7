package form

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/fitforge/fitforge-cli/internal/trainingapi"
)

func TestInit_CreateMode(t *testing.T) {
	t.Parallel()

	svc := &spyService{exists: false}
	c := NewController(svc, &spyNavigator{})

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if c.IsEditMode() {
		t.Error("expected create mode")
	}
	if svc.getCalls != 0 {
		t.Error("Get must not be called when no record exists")
	}
	if c.Form().Value(FieldGender) != "" {
		t.Error("form should stay empty in create mode")
	}
	if c.CurrentStep() != Step1 {
		t.Errorf("CurrentStep() = %d, want 1", c.CurrentStep())
	}
}

func TestInit_EditModePatchesWithoutTouching(t *testing.T) {
	t.Parallel()

	info := sampleInfo()
	svc := &spyService{exists: true, info: &info}
	c := NewController(svc, &spyNavigator{})

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if !c.IsEditMode() {
		t.Fatal("expected edit mode")
	}
	if c.Existing() == nil || *c.Existing().ID != 3 {
		t.Error("existing record not kept")
	}
	if got := c.Form().Value(FieldEquipment); got != string(info.Equipment) {
		t.Errorf("equipment = %q, want %q", got, info.Equipment)
	}
	if got := c.Form().Value(FieldBodyFatPercentage); got != "22" {
		t.Errorf("bodyFat = %q, want 22", got)
	}
	for _, name := range Fields() {
		if c.Form().IsTouched(name) {
			t.Errorf("%s touched after load", name)
		}
	}
}

func TestInit_ErrorIsMapped(t *testing.T) {
	t.Parallel()

	nav := &spyNavigator{}
	svc := &spyService{existsErr: &trainingapi.APIError{StatusCode: 401}}
	c := NewController(svc, nav)

	err := c.Init(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if trainingapi.StatusOf(err) != 401 {
		t.Errorf("returned error should wrap the API error, got %v", err)
	}
	if c.Error() != MsgSessionExpired {
		t.Errorf("Error() = %q, want %q", c.Error(), MsgSessionExpired)
	}
	if nav.last() != RouteLogin {
		t.Errorf("navigated to %q, want %q", nav.last(), RouteLogin)
	}
}

func TestInit_GetFailure(t *testing.T) {
	t.Parallel()

	svc := &spyService{exists: true, getErr: &trainingapi.APIError{StatusCode: 404}}
	c := NewController(svc, &spyNavigator{})

	if err := c.Init(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !c.IsEditMode() {
		t.Error("edit mode is set before the record is fetched")
	}
	if c.Error() != MsgNotFound {
		t.Errorf("Error() = %q, want %q", c.Error(), MsgNotFound)
	}
}

func TestOnSubmit_InvalidFormNeverCallsService(t *testing.T) {
	t.Parallel()

	svc := &spyService{}
	nav := &spyNavigator{}
	c := NewController(svc, nav)

	err := c.OnSubmit(context.Background())
	if !errors.Is(err, ErrFormInvalid) {
		t.Fatalf("expected ErrFormInvalid, got %v", err)
	}
	if creates, updates := svc.calls(); creates+updates != 0 {
		t.Errorf("service called %d times", creates+updates)
	}
	if c.IsLoading() {
		t.Error("IsLoading() should stay false")
	}
	if c.State().Status() != StatusIdle {
		t.Errorf("state = %v, want idle", c.State().Status())
	}
	for _, name := range Fields() {
		if !c.Form().IsTouched(name) {
			t.Errorf("%s should be touched after invalid submit", name)
		}
	}
	if !c.IsFieldInvalid(FieldGender) {
		t.Error("gender should now report invalid")
	}
	if len(nav.routes) != 0 {
		t.Error("no navigation expected")
	}
}

func TestOnSubmit_CreatePath(t *testing.T) {
	t.Parallel()

	svc := &spyService{}
	nav := &spyNavigator{}
	c := NewController(svc, nav)
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	fillValid(c.Form())

	if err := c.OnSubmit(context.Background()); err != nil {
		t.Fatalf("OnSubmit() error: %v", err)
	}
	creates, updates := svc.calls()
	if creates != 1 || updates != 0 {
		t.Fatalf("creates=%d updates=%d, want 1/0", creates, updates)
	}
	req := svc.creates[0]
	if req.Weight != 80 || req.Height != 180 || req.Gender != "MALE" {
		t.Errorf("unexpected request %+v", req)
	}
	if req.BodyFatPercentage != nil {
		t.Error("empty body fat must be omitted")
	}
	if c.State().Status() != StatusSucceeded || c.IsLoading() {
		t.Errorf("state = %v, want succeeded", c.State().Status())
	}
	if c.Saved() == nil {
		t.Error("Saved() should hold the returned record")
	}
	if nav.last() != RouteDashboard {
		t.Errorf("navigated to %q, want %q", nav.last(), RouteDashboard)
	}
}

func TestOnSubmit_UpdatePath(t *testing.T) {
	t.Parallel()

	info := sampleInfo()
	svc := &spyService{exists: true, info: &info}
	c := NewController(svc, &spyNavigator{})
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := c.SelectOption(FieldMainGoal, "STRENGTH"); err != nil {
		t.Fatalf("SelectOption() error: %v", err)
	}

	if err := c.OnSubmit(context.Background()); err != nil {
		t.Fatalf("OnSubmit() error: %v", err)
	}
	creates, updates := svc.calls()
	if creates != 0 || updates != 1 {
		t.Fatalf("creates=%d updates=%d, want 0/1", creates, updates)
	}
	up := svc.updates[0]
	if up.MainGoal == nil || *up.MainGoal != "STRENGTH" {
		t.Errorf("MainGoal = %v, want STRENGTH", up.MainGoal)
	}
	if up.Weight == nil || *up.Weight != info.Weight {
		t.Errorf("Weight = %v, want %v", up.Weight, info.Weight)
	}
}

func TestOnSubmit_FailureMapsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		want     string
		redirect bool
	}{
		{401, MsgSessionExpired, true},
		{403, MsgForbidden, false},
		{404, MsgNotFound, false},
		{422, MsgInvalidData, false},
		{0, MsgUnreachable, false},
		{500, MsgUnexpected, false},
	}

	for _, tt := range tests {
		t.Run("status_"+strconv.Itoa(tt.status), func(t *testing.T) {
			t.Parallel()
			svc := &spyService{saveErr: &trainingapi.APIError{StatusCode: tt.status}}
			nav := &spyNavigator{}
			c := NewController(svc, nav)
			fillValid(c.Form())

			if err := c.OnSubmit(context.Background()); err == nil {
				t.Fatal("expected error")
			}
			if c.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", c.Error(), tt.want)
			}
			if c.IsLoading() {
				t.Error("IsLoading() should be false after failure")
			}
			if tt.redirect && nav.last() != RouteLogin {
				t.Errorf("navigated to %q, want %q", nav.last(), RouteLogin)
			}
			if !tt.redirect && len(nav.routes) != 0 {
				t.Errorf("unexpected navigation %v", nav.routes)
			}
		})
	}
}

func TestSelectOption_ClearsErrorAndTouches(t *testing.T) {
	t.Parallel()

	svc := &spyService{saveErr: &trainingapi.APIError{StatusCode: 422}}
	c := NewController(svc, &spyNavigator{})
	fillValid(c.Form())
	_ = c.OnSubmit(context.Background())
	if c.Error() == "" {
		t.Fatal("expected error banner")
	}

	if err := c.SelectOption(FieldEquipment, "FULL_HOME_GYM"); err != nil {
		t.Fatalf("SelectOption() error: %v", err)
	}
	if c.Error() != "" {
		t.Errorf("Error() = %q, want cleared", c.Error())
	}
	if c.State().Status() != StatusIdle {
		t.Errorf("state = %v, want idle", c.State().Status())
	}
	if !c.Form().IsTouched(FieldEquipment) {
		t.Error("SelectOption should touch the field")
	}
	if err := c.SelectOption(Field("nope"), "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestSetField_DoesNotClearError(t *testing.T) {
	t.Parallel()

	svc := &spyService{saveErr: &trainingapi.APIError{StatusCode: 403}}
	c := NewController(svc, &spyNavigator{})
	fillValid(c.Form())
	_ = c.OnSubmit(context.Background())

	if err := c.SetField(FieldWeight, "81"); err != nil {
		t.Fatalf("SetField() error: %v", err)
	}
	if c.Error() != MsgForbidden {
		t.Errorf("Error() = %q, want banner kept", c.Error())
	}
	if !c.Form().IsTouched(FieldWeight) {
		t.Error("SetField should touch the field")
	}
}

func TestOnSubmit_RejectsReentry(t *testing.T) {
	t.Parallel()

	svc := &spyService{block: make(chan struct{}), entered: make(chan struct{})}
	c := NewController(svc, &spyNavigator{})
	fillValid(c.Form())

	done := make(chan error, 1)
	go func() { done <- c.OnSubmit(context.Background()) }()

	<-svc.entered
	if !c.IsLoading() {
		t.Error("IsLoading() should be true while the request is in flight")
	}
	if err := c.OnSubmit(context.Background()); !errors.Is(err, ErrSubmitInProgress) {
		t.Errorf("second OnSubmit = %v, want ErrSubmitInProgress", err)
	}

	close(svc.block)
	if err := <-done; err != nil {
		t.Fatalf("first OnSubmit error: %v", err)
	}
	if creates, _ := svc.calls(); creates != 1 {
		t.Errorf("creates = %d, want 1", creates)
	}
}

func TestControllerNavigation(t *testing.T) {
	t.Parallel()

	c := NewController(&spyService{}, nil)
	if c.NextStep() {
		t.Error("NextStep should be blocked on empty step 1")
	}
	_ = c.SelectOption(FieldGender, "FEMALE")
	_ = c.SetField(FieldWeight, "58")
	_ = c.SetField(FieldHeight, "165")
	if !c.IsStepValid(Step1) || !c.NextStep() {
		t.Fatal("NextStep should advance from a valid step 1")
	}
	if c.CurrentStep() != Step2 {
		t.Errorf("CurrentStep() = %d, want 2", c.CurrentStep())
	}
	if !c.PreviousStep() || c.CurrentStep() != Step1 {
		t.Error("PreviousStep should return to step 1")
	}
}

func TestEditController_MarksAllTouched(t *testing.T) {
	t.Parallel()

	info := sampleInfo()
	info.Weight = 20 // invalid server data
	svc := &spyService{info: &info}
	c := NewEditController(svc, &spyNavigator{}, info)

	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if svc.existsCalls != 0 {
		t.Error("edit dialog must not run the existence check")
	}
	if !c.IsEditMode() {
		t.Error("edit dialog must be in edit mode")
	}
	for _, name := range Fields() {
		if !c.Form().IsTouched(name) {
			t.Errorf("%s should be touched after patch", name)
		}
	}
	if !c.IsFieldInvalid(FieldWeight) {
		t.Error("invalid server weight should be revealed immediately")
	}

	_ = c.SetField(FieldWeight, "70")
	if err := c.OnSubmit(context.Background()); err != nil {
		t.Fatalf("OnSubmit() error: %v", err)
	}
	if creates, updates := svc.calls(); creates != 0 || updates != 1 {
		t.Errorf("creates=%d updates=%d, want 0/1", creates, updates)
	}
}
