package trainingapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusNetwork is the StatusCode of an APIError raised before any HTTP
// response was received.
const StatusNetwork = 0

// APIError is returned for every failed call. Non-2xx responses carry the
// HTTP status and transport failures carry StatusNetwork and the cause.
// A rejected local token is reported as 401, an undecodable 2xx body keeps
// its status with the decode error as cause.
type APIError struct {
	StatusCode int
	Message    string // server-provided message, may be empty
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == StatusNetwork {
		return fmt.Sprintf("trainingapi: network error: %v", e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("trainingapi: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("trainingapi: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("trainingapi: status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns the transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err.
// Errors that are not APIErrors count as network failures.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return StatusNetwork
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return err != nil && StatusOf(err) == http.StatusNotFound
}

// errorBody covers the error payload shapes the API returns.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
