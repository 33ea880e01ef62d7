package core

import "fmt"

// Severity says how a handler failure is reported
type Severity int

const (
	// SeverityUser failures are the user's to fix and are shown verbatim
	SeverityUser Severity = iota
	// SeverityInternal failures are logged and shown with a generic message
	SeverityInternal
)

// HandlerError carries the message a user sees for a failed interaction
type HandlerError struct {
	Err         error
	UserMessage string
	Severity    Severity
}

func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Internal reports whether the failure needs logging
func (e *HandlerError) Internal() bool {
	return e.Severity == SeverityInternal
}

// NewValidationError rejects input the user can correct
func NewValidationError(message string) *HandlerError {
	return &HandlerError{UserMessage: message}
}

func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{UserMessage: fmt.Sprintf("%s not found", resource)}
}

// NewInternalError hides err behind a generic message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: "Something went wrong on our side. Please try again later.",
		Severity:    SeverityInternal,
	}
}
