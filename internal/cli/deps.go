// Package cli provides the Cobra command tree and dependency injection
// wiring for the fitforge CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/fitforge/fitforge-cli/internal/auth"
	"github.com/fitforge/fitforge-cli/internal/config"
	"github.com/fitforge/fitforge-cli/internal/trainingapi"
	"github.com/fitforge/fitforge-cli/internal/ui"
)

// Authenticator signs users in and up.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.Credentials, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.Credentials, error)
}

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together. All CLI commands access
// dependencies through interfaces only.
type Dependencies struct {
	Config   *config.Manager
	Settings *config.Config
	Creds    auth.CredentialStore
	Training trainingapi.Service
	Auth     Authenticator
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// Options are the global flags that affect wiring.
type Options struct {
	ConfigDir string
	Verbose   bool
	NoColor   bool
	LogOutput io.Writer
}

// InitDependencies loads the configuration and wires every service.
// It should be called once per process, before any command runs.
func InitDependencies(opts Options) error {
	mgr := config.NewManager(opts.ConfigDir)
	cfg, err := mgr.Load()
	if err != nil {
		return err
	}

	level := cfg.Log.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logOut := opts.LogOutput
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	noColor := opts.NoColor || cfg.UI.NoColor || os.Getenv("NO_COLOR") != ""
	store := auth.NewFileCredentialStore(mgr.Dir())
	httpClient := &http.Client{Timeout: cfg.API.Timeout()}

	deps = &Dependencies{
		Config:   mgr,
		Settings: cfg,
		Creds:    store,
		Training: trainingapi.NewClient(cfg.API.BaseURL,
			trainingapi.WithHTTPClient(httpClient),
			trainingapi.WithTokenSource(store),
			trainingapi.WithLogger(logger),
		),
		Auth:     auth.NewClient(cfg.API.BaseURL, httpClient),
		Theme:    ui.NewTheme(noColor),
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}

	if !mgr.FromFile() {
		logger.Debug("config file not found, using defaults", "dir", mgr.Dir())
	}
	if f := mgr.EnvFile(); f != "" {
		logger.Debug("loaded dotenv file", "path", f)
	}
	for _, name := range mgr.IgnoredOverrides() {
		logger.Warn("ignoring invalid environment override", "env", name)
	}

	logger.Debug("dependencies initialized",
		"config_dir", mgr.Dir(), "config_file", mgr.FromFile(),
		"api", cfg.API.BaseURL, "locale", cfg.UI.Locale)
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// locale returns the configured UI locale.
func (d *Dependencies) locale() string {
	if d.Settings == nil {
		return config.DefaultLocale
	}
	return d.Settings.UI.Locale
}

// logger returns the configured logger or a discard logger.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// requireDeps returns deps or an error when wiring has not happened.
func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	return deps, nil
}
