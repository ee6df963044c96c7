package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/fitforge-cli/internal/trainingapi"
	"github.com/fitforge/fitforge-cli/pkg/version"
)

// Auth endpoint paths under the API base URL.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
)

// ErrWeakPassword is returned by Register when the password scores below
// MinSignupScore.
var ErrWeakPassword = errors.New("auth: password too weak")

// ErrInvalidEmail is returned when the email address cannot be parsed.
var ErrInvalidEmail = errors.New("auth: invalid email address")

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// authResponse is the token payload returned by login and register.
type authResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// Client calls the authentication endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// NewClient creates an auth client for the API rooted at baseURL.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		now:     time.Now,
	}
}

// Login exchanges email and password for credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	body := map[string]string{"email": strings.TrimSpace(email), "password": password}
	return c.post(ctx, LoginPath, body)
}

// Register creates an account and returns its credentials.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Credentials, error) {
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if !PasswordStrength(req.Password).Acceptable() {
		return nil, ErrWeakPassword
	}
	req.Email = strings.TrimSpace(req.Email)
	return c.post(ctx, RegisterPath, req)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Credentials, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("auth: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("auth: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &trainingapi.APIError{StatusCode: trainingapi.StatusNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, trainingapi.ErrorFromResponse(resp)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("auth: decode response: %w", err)
	}
	if out.Token == "" {
		return nil, errors.New("auth: response carried no token")
	}

	creds := &Credentials{Token: out.Token, UserID: out.UserID, Email: out.Email}
	if out.ExpiresIn > 0 {
		creds.ExpiresAt = c.now().Add(time.Duration(out.ExpiresIn) * time.Second).UTC()
	}
	return creds, nil
}

// ValidateEmail checks that s is a bare email address.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return ErrInvalidEmail
	}
	return nil
}
