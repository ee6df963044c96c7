package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/fitforge/fitforge-cli/pkg/models"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded template variables copied from a shell snippet.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness and returns every
// problem found as *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateAPI(&cfg.API)...)
	errs = append(errs, validateUI(&cfg.UI)...)
	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, checkStringField("api.base_url", cfg.API.BaseURL)...)
	errs = append(errs, checkStringField("ui.locale", cfg.UI.Locale)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateAPI(a *APIConfig) []ValidationError {
	var errs []ValidationError

	u, err := url.Parse(a.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: "must be an absolute http(s) URL",
			Value:   a.BaseURL,
			Wrapped: ErrInvalidConfig,
		})
	}

	if a.TimeoutSeconds < MinTimeoutSeconds || a.TimeoutSeconds > MaxTimeoutSeconds {
		errs = append(errs, ValidationError{
			Field:   "api.timeout_seconds",
			Message: fmt.Sprintf("must be between %d and %d", MinTimeoutSeconds, MaxTimeoutSeconds),
			Value:   a.TimeoutSeconds,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateUI(u *UIConfig) []ValidationError {
	if models.IsSupportedLocale(u.Locale) {
		return nil
	}
	return []ValidationError{{
		Field:   "ui.locale",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(models.SupportedLocales(), ", ")),
		Value:   u.Locale,
		Wrapped: ErrInvalidConfig,
	}}
}

func validateLog(l *LogConfig) []ValidationError {
	if _, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return nil
	}
	names := make([]string, 0, len(logLevels))
	for name := range logLevels {
		names = append(names, name)
	}
	slices.Sort(names)
	return []ValidationError{{
		Field:   "log.level",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(names, ", ")),
		Value:   l.Level,
		Wrapped: ErrInvalidConfig,
	}}
}

// checkStringField checks a single string field for dynamic token patterns.
func checkStringField(field, value string) []ValidationError {
	if value == "" {
		return nil
	}
	for _, pattern := range dynamicTokenPatterns {
		if match := pattern.FindString(value); match != "" {
			return []ValidationError{
				{
					Field:   field,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", match),
					Value:   value,
					Wrapped: ErrDynamicToken,
				},
			}
		}
	}
	return nil
}
