// Package auth handles sign-in, sign-up and local credential storage for
// the fitforge API.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CredentialsFile is the file name used inside the config directory.
const CredentialsFile = "credentials.json"

// ErrNotLoggedIn is returned when no usable credentials are stored.
var ErrNotLoggedIn = errors.New("auth: not logged in")

// ErrSessionExpired is returned when the stored token is past its expiry.
var ErrSessionExpired = errors.New("auth: session expired")

// Credentials holds the signed-in user's session.
type Credentials struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// Expired reports whether the credentials carry an expiry in the past.
func (c *Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// CredentialStore persists credentials between CLI invocations.
type CredentialStore interface {
	Load() (*Credentials, error)
	Save(creds *Credentials) error
	Delete() error
}

// FileCredentialStore keeps credentials as JSON in a single 0600 file.
type FileCredentialStore struct {
	dir string
	now func() time.Time
}

// Compile-time interface check.
var _ CredentialStore = (*FileCredentialStore)(nil)

// NewFileCredentialStore creates a store rooted at dir.
func NewFileCredentialStore(dir string) *FileCredentialStore {
	return &FileCredentialStore{dir: dir, now: time.Now}
}

// Path returns the credentials file path.
func (s *FileCredentialStore) Path() string {
	return filepath.Join(s.dir, CredentialsFile)
}

// Load reads the stored credentials. A missing or empty file returns
// ErrNotLoggedIn.
func (s *FileCredentialStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", s.Path(), err)
	}
	if strings.TrimSpace(creds.Token) == "" {
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

// Save writes creds atomically with owner-only permissions.
func (s *FileCredentialStore) Save(creds *Credentials) error {
	if creds == nil || creds.Token == "" {
		return errors.New("save credentials: empty token")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Delete removes stored credentials. Deleting when none exist is not an error.
func (s *FileCredentialStore) Delete() error {
	err := os.Remove(s.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

// Token implements trainingapi.TokenSource.
func (s *FileCredentialStore) Token() (string, error) {
	creds, err := s.Load()
	if err != nil {
		return "", err
	}
	if creds.Expired(s.now()) {
		return "", ErrSessionExpired
	}
	return creds.Token, nil
}
