package form

// SubmissionStatus is the phase of the form's network activity.
type SubmissionStatus int

const (
	StatusIdle SubmissionStatus = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

// String returns the status name.
func (s SubmissionStatus) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "idle"
}

// SubmissionState replaces separate loading and error flags. Only Failed
// carries a reason, so "loading with a stale error" cannot be represented.
type SubmissionState struct {
	status SubmissionStatus
	reason string
}

// Idle is the resting state.
func Idle() SubmissionState { return SubmissionState{status: StatusIdle} }

// Submitting is the state while a request is in flight.
func Submitting() SubmissionState { return SubmissionState{status: StatusSubmitting} }

// Succeeded is the state after a successful call.
func Succeeded() SubmissionState { return SubmissionState{status: StatusSucceeded} }

// Failed is the state after a failed call, with the user-facing reason.
func Failed(reason string) SubmissionState {
	return SubmissionState{status: StatusFailed, reason: reason}
}

// Status returns the phase.
func (s SubmissionState) Status() SubmissionStatus { return s.status }

// Reason returns the error message; empty unless Failed.
func (s SubmissionState) Reason() string { return s.reason }

// IsLoading reports whether a request is in flight.
func (s SubmissionState) IsLoading() bool { return s.status == StatusSubmitting }
