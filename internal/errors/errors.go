package errors

import (
	goerrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeEmptyColumn   ErrorType = "EMPTY_COLUMN"
	ErrTypeUnknownColumn ErrorType = "UNKNOWN_COLUMN"
	ErrTypeKindMismatch  ErrorType = "KIND_MISMATCH"
	ErrTypeSchema        ErrorType = "SCHEMA"
	ErrTypeValidation    ErrorType = "VALIDATION"
	ErrTypeConfig        ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if goerrors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper functions for common error types

// NewEmptyColumnError creates an error for an aggregate requested over a
// column with zero present values
func NewEmptyColumnError(column string) *AppError {
	return NewAppError(ErrTypeEmptyColumn,
		fmt.Sprintf("column %q has no present values", column), nil).
		WithContext("column", column)
}

// NewUnknownColumnError creates an error for a lookup of a column name the
// table does not declare
func NewUnknownColumnError(column string) *AppError {
	return NewAppError(ErrTypeUnknownColumn,
		fmt.Sprintf("unknown column %q", column), nil).
		WithContext("column", column)
}

// NewKindMismatchError creates an error for using a column as the wrong
// kind. declared is the column's construction-time kind, used the kind it
// was accessed or written as.
func NewKindMismatchError(column, declared, used string) *AppError {
	return NewAppError(ErrTypeKindMismatch,
		fmt.Sprintf("column %q is %s, not %s", column, declared, used), nil).
		WithContext("column", column).
		WithContext("declared", declared).
		WithContext("used", used)
}

// NewSchemaError creates a schema construction error
func NewSchemaError(message string) *AppError {
	return NewAppError(ErrTypeSchema, message, nil)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
