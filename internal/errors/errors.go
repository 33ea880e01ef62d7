// Package errors carries coded errors from the gateways and the sheet service
// to the surfaces, which map codes to HTTP statuses and Discord messages.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

type Code string

const (
	CodeUnknown          Code = "unknown"
	CodeInvalidArgument  Code = "invalid_argument"  // names outside the catalogs
	CodeNotFound         Code = "not_found"         // no stored sheet
	CodePermissionDenied Code = "permission_denied" // caller does not own the sheet
	CodeInternal         Code = "internal"          // broken invariant
	CodeUnavailable      Code = "unavailable"       // remote store failed or answered badly
	CodeValidation       Code = "validation"        // payload has the wrong shape
)

// Error is a coded error with optional metadata for logs
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap adds context to err, keeping the code and metadata of a wrapped
// *Error. Uncoded causes become CodeUnknown. A nil err stays nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	var coded *Error
	if errors.As(err, &coded) {
		wrapped.Code = coded.Code
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

// WrapWithCode is Wrap with the code overridden
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

func Internalf(format string, args ...any) *Error {
	return New(CodeInternal, fmt.Sprintf(format, args...))
}

func Validation(message string) *Error { return New(CodeValidation, message) }

// Unavailable marks a failed call to the remote store; err may be nil
func Unavailable(err error, message string) *Error {
	if err == nil {
		return New(CodeUnavailable, message)
	}
	return WrapWithCode(err, CodeUnavailable, message)
}

// GetCode is the code of the outermost *Error in the chain
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func Is(err error, code Code) bool {
	var coded *Error
	return errors.As(err, &coded) && coded.Code == code
}

func IsNotFound(err error) bool         { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool  { return Is(err, CodeInvalidArgument) }
func IsPermissionDenied(err error) bool { return Is(err, CodePermissionDenied) }
func IsInternal(err error) bool         { return Is(err, CodeInternal) }
func IsUnavailable(err error) bool      { return Is(err, CodeUnavailable) }
func IsValidation(err error) bool       { return Is(err, CodeValidation) }
