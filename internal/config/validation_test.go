package config

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		target error
	}{
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://api.example.com" }, "api.base_url", ErrInvalidConfig},
		{"relative url", func(c *Config) { c.API.BaseURL = "/api" }, "api.base_url", ErrInvalidConfig},
		{"timeout zero", func(c *Config) { c.API.TimeoutSeconds = 0 }, "api.timeout_seconds", ErrInvalidConfig},
		{"timeout too big", func(c *Config) { c.API.TimeoutSeconds = 301 }, "api.timeout_seconds", ErrInvalidConfig},
		{"locale", func(c *Config) { c.UI.Locale = "xx-invalid-" }, "ui.locale", ErrInvalidConfig},
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level", ErrInvalidConfig},
		{"dynamic token", func(c *Config) { c.API.BaseURL = "https://${API_HOST}/api" }, "api.base_url", ErrDynamicToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(err, %v) = false; err = %v", tt.target, err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("every validation failure should match ErrInvalidConfig")
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected *ValidationErrors, got %T", err)
			}
			if !slices.Contains(verrs.Fields(), tt.field) {
				t.Errorf("fields %v do not include %q", verrs.Fields(), tt.field)
			}
		})
	}
}

func TestValidate_Boundaries(t *testing.T) {
	t.Parallel()

	for _, secs := range []int{MinTimeoutSeconds, MaxTimeoutSeconds} {
		cfg := NewDefaultConfig()
		cfg.API.TimeoutSeconds = secs
		if err := Validate(cfg); err != nil {
			t.Errorf("timeout %d should be valid: %v", secs, err)
		}
	}

	cfg := NewDefaultConfig()
	cfg.API.BaseURL = "http://localhost:8080/api"
	cfg.UI.Locale = "fr"
	cfg.Log.Level = "DEBUG"
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config: %v", err)
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	err := Validate(cfg)
	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %v", err)
	}
	if len(verrs.Errors) != 4 {
		t.Errorf("got %d errors (%v), want 4", len(verrs.Errors), verrs.Fields())
	}
	if !strings.Contains(err.Error(), "4 error(s)") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	withValue := &ValidationError{Field: "log.level", Message: "bad", Value: "trace"}
	if got := withValue.Error(); got != `validation error: field "log.level": bad (got: trace)` {
		t.Errorf("Error() = %q", got)
	}
	noValue := &ValidationError{Field: "ui.locale", Message: "bad"}
	if got := noValue.Error(); got != `validation error: field "ui.locale": bad` {
		t.Errorf("Error() = %q", got)
	}
	if (&ValidationErrors{}).Error() != "validation: no errors" {
		t.Error("empty ValidationErrors message mismatch")
	}
}
