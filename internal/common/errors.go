// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Provider errors.
	ErrRateLimit  = errors.New("rate limit exceeded")
	ErrMaxRetries = errors.New("max retries exceeded")

	// Catalog errors.
	ErrCatalogNotFound = errors.New("catalog not found")

	// Analysis errors.
	ErrNoDocument = errors.New("no document text to analyze")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// StructuralError indicates malformed input structure, such as a catalog
// document missing required keys. Structural errors are fatal and never
// retried.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return e.Msg
}

// NewStructuralError creates a structural error with a formatted message.
func NewStructuralError(format string, args ...any) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError indicates a single malformed candidate, such as a blank
// description. Validation errors reject just that candidate; the rest of the
// batch is unaffected.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
