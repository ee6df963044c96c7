package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Loader reads the configuration file and environment overrides.
type Loader struct {
	// EnvFile is the optional dotenv file applied before environment
	// overrides. Variables already set in the process environment win.
	EnvFile string
}

// NewLoader creates a Loader that reads .env from the working directory.
func NewLoader() *Loader {
	return &Loader{EnvFile: EnvFileName}
}

// LoadResult is the outcome of Loader.Load.
type LoadResult struct {
	// Effective is the configuration commands run with: defaults, file,
	// then .env and environment overrides.
	Effective *Config
	// File holds defaults plus the config file only. This is what Save
	// writes back.
	File *Config
	// FromFile reports whether the config file was found.
	FromFile bool
	// EnvFile is the dotenv path that was applied, or "".
	EnvFile string
	// Ignored lists override variables whose values could not be used.
	Ignored []string
}

// Load reads <dir>/config.yaml on top of compiled defaults, then applies
// the .env file and environment overrides to a copy. A missing config file
// uses defaults. Load does not log; callers report the result.
func (l *Loader) Load(dir string) (*LoadResult, error) {
	file := NewDefaultConfig()

	loaded, err := loadYAMLFile(filepath.Join(filepath.Clean(dir), ConfigFileName), file)
	if err != nil {
		return nil, err
	}

	envFile, err := l.loadDotEnv()
	if err != nil {
		return nil, err
	}

	effective := *file
	ignored := applyEnvOverrides(&effective)
	return &LoadResult{
		Effective: &effective,
		File:      file,
		FromFile:  loaded,
		EnvFile:   envFile,
		Ignored:   ignored,
	}, nil
}

// loadDotEnv applies the dotenv file and returns its path, or "" when
// there is none.
func (l *Loader) loadDotEnv() (string, error) {
	if l.EnvFile == "" {
		return "", nil
	}
	if err := godotenv.Load(l.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("load %s: %w", l.EnvFile, err)
	}
	return l.EnvFile, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
// It returns the names of variables whose values were ignored.
func applyEnvOverrides(cfg *Config) []string {
	var ignored []string
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.BaseURL = url
	}
	if locale := os.Getenv(EnvLocale); locale != "" {
		cfg.UI.Locale = locale
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		secs, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			ignored = append(ignored, EnvTimeout)
		} else {
			cfg.API.TimeoutSeconds = secs
		}
	}
	if noColor := os.Getenv(EnvNoColor); noColor == "true" || noColor == "1" {
		cfg.UI.NoColor = true
	}
	return ignored
}

// loadYAMLFile reads a YAML file and unmarshals it into the target struct.
// Returns (true, nil) if the file was found and parsed, (false, nil) if the
// file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}
	return true, nil
}
