// Package trainingapi is a typed HTTP client for the training-info
// endpoints of the fitforge platform API.
package trainingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/fitforge-cli/pkg/models"
	"github.com/fitforge/fitforge-cli/pkg/version"
)

// BasePath is the resource path of training info under the API base URL.
const BasePath = "/training-info"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// TokenSource supplies the bearer token for authenticated calls.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token() (string, error) { return f() }

// Service is the training-info API surface consumed by the form.
type Service interface {
	Exists(ctx context.Context) (bool, error)
	Get(ctx context.Context) (*models.TrainingInfo, error)
	Create(ctx context.Context, req models.CreateTrainingInfoRequest) (*models.TrainingInfo, error)
	Update(ctx context.Context, req models.UpdateTrainingInfoRequest) (*models.TrainingInfo, error)
	Delete(ctx context.Context) error
	GetByUser(ctx context.Context, userID int64) (*models.TrainingInfo, error)
}

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// Compile-time interface check.
var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource sets the bearer token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for the API rooted at baseURL
// (e.g., "https://api.fitforge.app/api"). For testing, pass the
// httptest.Server URL directly.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether the current user already has training info.
func (c *Client) Exists(ctx context.Context) (bool, error) {
	var exists bool
	if err := c.do(ctx, http.MethodGet, BasePath+"/exists", nil, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Get fetches the current user's training info.
func (c *Client) Get(ctx context.Context) (*models.TrainingInfo, error) {
	var info models.TrainingInfo
	if err := c.do(ctx, http.MethodGet, BasePath, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Create stores new training info for the current user.
func (c *Client) Create(ctx context.Context, req models.CreateTrainingInfoRequest) (*models.TrainingInfo, error) {
	var info models.TrainingInfo
	if err := c.do(ctx, http.MethodPost, BasePath, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Update partially updates the current user's training info.
func (c *Client) Update(ctx context.Context, req models.UpdateTrainingInfoRequest) (*models.TrainingInfo, error) {
	var info models.TrainingInfo
	if err := c.do(ctx, http.MethodPut, BasePath, req, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Delete removes the current user's training info.
func (c *Client) Delete(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, BasePath, nil, nil)
}

// GetByUser fetches the training info of an arbitrary user.
func (c *Client) GetByUser(ctx context.Context, userID int64) (*models.TrainingInfo, error) {
	var info models.TrainingInfo
	path := BasePath + "/" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// do performs a single request. No retries: one request, one result.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("trainingapi: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("trainingapi: create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			// A missing or expired local session is handled like a 401.
			return &APIError{StatusCode: http.StatusUnauthorized, Err: fmt.Errorf("token: %w", err)}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("training api request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return &APIError{StatusCode: StatusNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("training api request",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// ErrorFromResponse builds an APIError from a non-2xx response, keeping the
// server message when the body carries one.
func ErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.text()
	}
	return apiErr
}
