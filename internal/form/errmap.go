package form

import (
	"errors"
	"net/http"

	"github.com/fitforge/fitforge-cli/internal/trainingapi"
)

// Routes understood by the Navigator.
const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"
)

// Navigator is the routing collaborator.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(route string) { f(route) }

// User-facing messages of the error mapping policy.
const (
	MsgSessionExpired = "Session expired, please sign in again"
	MsgForbidden      = "Access denied — insufficient permissions"
	MsgNotFound       = "Training information not found"
	MsgInvalidData    = "Invalid data — please check your inputs"
	MsgUnreachable    = "Cannot reach server — check your connection"
	MsgUnexpected     = "An unexpected error occurred, please try again"
)

// ErrorOutcome is the result of mapping a transport error.
type ErrorOutcome struct {
	Status        int
	Message       string
	RedirectLogin bool
}

// MapError maps an API error to exactly one user-facing outcome.
// Errors without an HTTP status count as network failures.
func MapError(err error) ErrorOutcome {
	status := trainingapi.StatusOf(err)
	out := ErrorOutcome{Status: status}

	switch status {
	case http.StatusUnauthorized:
		out.Message = MsgSessionExpired
		out.RedirectLogin = true
	case http.StatusForbidden:
		out.Message = MsgForbidden
	case http.StatusNotFound:
		out.Message = MsgNotFound
	case http.StatusUnprocessableEntity:
		out.Message = MsgInvalidData
	case trainingapi.StatusNetwork:
		out.Message = MsgUnreachable
	default:
		out.Message = MsgUnexpected
		if msg := serverMessage(err); msg != "" {
			out.Message = msg
		}
	}
	return out
}

// HandleError maps err and performs the login redirect when required.
// It returns the message to display.
func HandleError(err error, nav Navigator) string {
	out := MapError(err)
	if out.RedirectLogin && nav != nil {
		nav.Navigate(RouteLogin)
	}
	return out.Message
}

func serverMessage(err error) string {
	var apiErr *trainingapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
