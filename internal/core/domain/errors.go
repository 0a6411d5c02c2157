package domain

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorKind is the machine-readable code carried by every API error body.
type ErrorKind string

const (
	KindValidationFailed ErrorKind = "VALIDATION_FAILED"
	KindUnauthorized     ErrorKind = "UNAUTHORIZED"
	KindForbidden        ErrorKind = "FORBIDDEN"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindConflict         ErrorKind = "CONFLICT"
	KindTooManyRequests  ErrorKind = "TOO_MANY_REQUESTS"
	KindInternal         ErrorKind = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrInvalidToken is the single opaque failure returned by token verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("record not found")
)

// ServiceError is a typed failure raised by services, middleware and the
// validation layer. The HTTP error handler renders it as {code, message, details}.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
	Err     error

	pcs []uintptr
}

func newServiceError(kind ErrorKind, msg string) *ServiceError {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	return &ServiceError{Kind: kind, Message: msg, pcs: pcs[:n]}
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// WithDetails attaches structured details and returns the same error.
func (e *ServiceError) WithDetails(details map[string]any) *ServiceError {
	e.Details = details
	return e
}

// Wrap records the underlying cause.
func (e *ServiceError) Wrap(err error) *ServiceError {
	e.Err = err
	return e
}

// Stack renders the call site captured when the error was created.
func (e *ServiceError) Stack() string {
	if len(e.pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(e.pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}

func ValidationFailed(msg string) *ServiceError { return newServiceError(KindValidationFailed, msg) }
func Unauthorized(msg string) *ServiceError     { return newServiceError(KindUnauthorized, msg) }
func Forbidden(msg string) *ServiceError        { return newServiceError(KindForbidden, msg) }
func NotFound(msg string) *ServiceError         { return newServiceError(KindNotFound, msg) }
func Conflict(msg string) *ServiceError         { return newServiceError(KindConflict, msg) }
func TooManyRequests(msg string) *ServiceError  { return newServiceError(KindTooManyRequests, msg) }
func Internal(msg string) *ServiceError         { return newServiceError(KindInternal, msg) }

// AsServiceError unwraps err into a *ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// KindOf returns the kind of a ServiceError in err's chain, or "" when there is none.
func KindOf(err error) ErrorKind {
	if se, ok := AsServiceError(err); ok {
		return se.Kind
	}
	return ""
}
