// Package config loads, validates and persists the fitforge CLI
// configuration. Values come from compiled defaults, the YAML config file,
// an optional .env file and FITFORGE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNotInitialized indicates the Manager has not been initialized via Load().
	ErrNotInitialized = errors.New("config: manager not initialized, call Load() first")

	// ErrUnknownKey indicates a dotted key that does not name a setting.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrDynamicToken indicates an unexpanded dynamic token was detected in a config value.
	ErrDynamicToken = errors.New("config: unexpanded dynamic token detected")

	// ErrInvalidYAML indicates invalid YAML syntax in the configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

// Fields returns the dotted names of all failing fields.
func (e *ValidationErrors) Fields() []string {
	out := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		out[i] = ve.Field
	}
	return out
}
