package config

import (
	"log/slog"
	"strings"
	"time"
)

// File and environment names.
const (
	DirName        = ".fitforge"
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"

	EnvConfigDir = "FITFORGE_CONFIG_DIR"
	EnvAPIURL    = "FITFORGE_API_URL"
	EnvLocale    = "FITFORGE_LOCALE"
	EnvLogLevel  = "FITFORGE_LOG_LEVEL"
	EnvTimeout   = "FITFORGE_TIMEOUT"
	EnvNoColor   = "FITFORGE_NO_COLOR"
)

// Config is the root configuration aggregate.
type Config struct {
	API APIConfig `yaml:"api"`
	UI  UIConfig  `yaml:"ui"`
	Log LogConfig `yaml:"log"`
}

// APIConfig configures the platform API client.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-command request timeout.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// UIConfig configures terminal output.
type UIConfig struct {
	Locale  string `yaml:"locale"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level string `yaml:"level"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the slog level for the configured name.
// Unknown names fall back to warn.
func (l LogConfig) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(l.Level)]; ok {
		return lvl
	}
	return slog.LevelWarn
}
