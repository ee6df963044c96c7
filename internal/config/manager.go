package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager provides thread-safe access to the CLI configuration.
// It must be initialized via Load() before use.
// The effective configuration includes environment overrides. Set and Save
// work on the file layer only, so overrides never end up in config.yaml.
type Manager struct {
	mu       sync.RWMutex
	config   *Config // effective
	file     *Config // defaults + config.yaml
	dir      string
	loader   *Loader
	fromFile bool
	envFile  string
	ignored  []string
}

// NewManager creates a Manager for the config directory dir.
// An empty dir resolves to DefaultDir().
func NewManager(dir string) *Manager {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Manager{dir: filepath.Clean(dir), loader: NewLoader()}
}

// DefaultDir returns FITFORGE_CONFIG_DIR when set, otherwise ~/.fitforge.
// If the home directory cannot be resolved, the current directory is used.
func DefaultDir() string {
	if envDir := os.Getenv(EnvConfigDir); envDir != "" {
		return filepath.Clean(envDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// SetEnvFile changes the dotenv file read by Load. Empty disables it.
func (m *Manager) SetEnvFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loader.EnvFile = path
}

// Dir returns the config directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return filepath.Join(m.dir, ConfigFileName)
}

// Load reads, merges and validates the configuration.
func (m *Manager) Load() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.loader.Load(m.dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := Validate(res.Effective); err != nil {
		return nil, err
	}

	m.config = res.Effective
	m.file = res.File
	m.fromFile = res.FromFile
	m.envFile = res.EnvFile
	m.ignored = res.Ignored
	cfg := *m.config
	return &cfg, nil
}

// Get returns a copy of the current configuration, or nil before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	cfg := *m.config
	return &cfg
}

// FromFile reports whether the last Load found a config file.
func (m *Manager) FromFile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fromFile
}

// EnvFile returns the dotenv file applied by the last Load, or "".
func (m *Manager) EnvFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.envFile
}

// IgnoredOverrides lists override variables the last Load could not use.
func (m *Manager) IgnoredOverrides() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.ignored...)
}

// Keys lists the dotted keys accepted by Set.
func Keys() []string {
	return []string{"api.base_url", "api.timeout_seconds", "ui.locale", "ui.no_color", "log.level"}
}

// Set updates one setting by dotted key in the file layer. The result is
// validated before it replaces the current configuration. Environment
// overrides keep precedence in the effective configuration. Call Save to
// persist it.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return ErrNotInitialized
	}
	next := *m.file
	if err := setKey(&next, key, strings.TrimSpace(value)); err != nil {
		return err
	}
	if err := Validate(&next); err != nil {
		return err
	}

	effective := next
	applyEnvOverrides(&effective)
	if err := Validate(&effective); err != nil {
		return err
	}
	m.file = &next
	m.config = &effective
	return nil
}

func setKey(cfg *Config, key, value string) error {
	switch key {
	case "api.base_url":
		cfg.API.BaseURL = value
	case "api.timeout_seconds":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return &ValidationErrors{Errors: []ValidationError{{
				Field: key, Message: "must be an integer", Value: value, Wrapped: ErrInvalidConfig,
			}}}
		}
		cfg.API.TimeoutSeconds = secs
	case "ui.locale":
		cfg.UI.Locale = value
	case "ui.no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &ValidationErrors{Errors: []ValidationError{{
				Field: key, Message: "must be true or false", Value: value, Wrapped: ErrInvalidConfig,
			}}}
		}
		cfg.UI.NoColor = b
	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// Save persists the file layer atomically. Environment overrides are not
// written. Returns ErrNotInitialized if Load() has not been called.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return ErrNotInitialized
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.file)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ConfigFileName, err)
	}
	if err := atomicWrite(filepath.Join(m.dir, ConfigFileName), data); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	m.fromFile = true
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".fitforge-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
