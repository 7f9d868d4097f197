// File: api/errors.go
// License: Apache-2.0
//
// Error kinds shared across the pktpool library.
//
// The pool is fail-fast: misuse (underflow, overflow, double release)
// panics with an *Error so the process stops before operating on a
// corrupted ownership model. Callers who prefer graceful degradation use
// the Try* variants, which return the same kinds as ordinary errors.

package api

import "fmt"

// Sentinel errors for the Try* API surface and for errors.Is matching.
var (
	ErrUnderflow          = fmt.Errorf("packet freelist underflow")
	ErrOverflow           = fmt.Errorf("packet freelist overflow")
	ErrAlreadyInitialized = fmt.Errorf("pool already initialized")
	ErrNotInitialized     = fmt.Errorf("pool not initialized")
	ErrDoubleRelease      = fmt.Errorf("packet already released")
	ErrForeignPacket      = fmt.Errorf("packet does not belong to this pool")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
)

// ErrorCode identifies a specific misuse condition.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeUnderflow
	ErrCodeOverflow
	ErrCodeAlreadyInitialized
	ErrCodeNotInitialized
	ErrCodeDoubleRelease
	ErrCodeForeignPacket
	ErrCodeInvalidArgument
)

// sentinel maps a code back to its sentinel for errors.Is chains.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeUnderflow:
		return ErrUnderflow
	case ErrCodeOverflow:
		return ErrOverflow
	case ErrCodeAlreadyInitialized:
		return ErrAlreadyInitialized
	case ErrCodeNotInitialized:
		return ErrNotInitialized
	case ErrCodeDoubleRelease:
		return ErrDoubleRelease
	case ErrCodeForeignPacket:
		return ErrForeignPacket
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// Error is a structured error with a code and optional context values.
// Pool panics carry *Error values, so a recovering caller can still
// dispatch on Code.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the matching sentinel so errors.Is works on both the
// returned and the panicked form.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
