// Package errors provides structured error types for Fabrica. All errors
// include a category, code, and message so callers can match on the
// failure kind without string comparison.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by component.
type ErrorCategory string

const (
	ErrCategorySchema   ErrorCategory = "SCHEMA"
	ErrCategoryBatch    ErrorCategory = "BATCH"
	ErrCategoryUnique   ErrorCategory = "UNIQUE"
	ErrCategoryProvider ErrorCategory = "PROVIDER"
	ErrCategoryLocale   ErrorCategory = "LOCALE"
	ErrCategorySink     ErrorCategory = "SINK"
	ErrCategoryInternal ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Schema codes
	CodeUnknownType    = "UNKNOWN_TYPE"
	CodeInvalidRange   = "INVALID_RANGE"
	CodeEmptyChoice    = "EMPTY_CHOICE"
	CodeSchemaTooLarge = "SCHEMA_TOO_LARGE"
	CodeDuplicateField = "DUPLICATE_FIELD"
	CodeBadFieldSpec   = "BAD_FIELD_SPEC"

	// Batch codes
	CodeBatchTooLarge = "BATCH_TOO_LARGE"

	// Unique codes
	CodeExhausted = "EXHAUSTED"

	// Provider codes
	CodeNameCollision    = "NAME_COLLISION"
	CodeProviderNotFound = "PROVIDER_NOT_FOUND"
	CodeEmptyOptions     = "EMPTY_OPTIONS"
	CodeInvalidWeights   = "INVALID_WEIGHTS"

	// Locale codes
	CodeUnsupportedLocale = "UNSUPPORTED_LOCALE"

	// Sink codes
	CodeOpenFailed  = "OPEN_FAILED"
	CodeWriteFailed = "WRITE_FAILED"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// FabricaError is the structured error type used throughout the system.
type FabricaError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Details  map[string]interface{}
	Cause    error
}

// Error returns a formatted error string.
func (e *FabricaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *FabricaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *FabricaError) Is(target error) bool {
	var t *FabricaError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new FabricaError.
func New(category ErrorCategory, code, message string) *FabricaError {
	return &FabricaError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Newf creates a new FabricaError with a formatted message.
func Newf(category ErrorCategory, code, format string, args ...interface{}) *FabricaError {
	return New(category, code, fmt.Sprintf(format, args...))
}

// Wrap creates a new FabricaError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *FabricaError {
	return &FabricaError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *FabricaError) WithDetails(details map[string]interface{}) *FabricaError {
	cp := *e
	cp.Details = details
	return &cp
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a FabricaError.
func GetCategory(err error) ErrorCategory {
	var fe *FabricaError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a FabricaError.
func GetCode(err error) string {
	var fe *FabricaError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// Convenience constructors for common errors.

// NewSchemaError reports a schema compilation failure for the named field.
func NewSchemaError(code, field, reason string) *FabricaError {
	e := Newf(ErrCategorySchema, code, "field %q: %s", field, reason)
	return e.WithDetails(map[string]interface{}{"field": field})
}

// NewBatchSizeError reports a batch size over the configured maximum.
func NewBatchSizeError(requested, max int) *FabricaError {
	e := Newf(ErrCategoryBatch, CodeBatchTooLarge,
		"batch size %d exceeds maximum %d", requested, max)
	return e.WithDetails(map[string]interface{}{"requested": requested, "max": max})
}

// NewUniqueExhaustedError reports unique generation giving up after the
// retry budget, with how far it got.
func NewUniqueExhaustedError(requested, generated int) *FabricaError {
	e := Newf(ErrCategoryUnique, CodeExhausted,
		"unique value generation exhausted: requested %d but could only generate %d unique values",
		requested, generated)
	return e.WithDetails(map[string]interface{}{"requested": requested, "generated": generated})
}

// NewProviderError reports a custom provider registration or lookup failure.
func NewProviderError(code, name, reason string) *FabricaError {
	e := Newf(ErrCategoryProvider, code, "provider %q: %s", name, reason)
	return e.WithDetails(map[string]interface{}{"provider": name})
}

// NewLocaleError reports an unsupported locale.
func NewLocaleError(name string) *FabricaError {
	e := Newf(ErrCategoryLocale, CodeUnsupportedLocale, "unsupported locale %q", name)
	return e.WithDetails(map[string]interface{}{"locale": name})
}

// NewSinkError reports an output sink failure.
func NewSinkError(code, message string, cause error) *FabricaError {
	return Wrap(ErrCategorySink, code, message, cause)
}

// NewInternalError reports an unexpected condition that upstream
// validation should have made unreachable.
func NewInternalError(message string, cause error) *FabricaError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
