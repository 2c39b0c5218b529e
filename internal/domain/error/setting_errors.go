// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

import "errors"

// Setting domain errors.
var (
	// ErrSettingNotFound is returned when a setting key is not found.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingValue is returned when a setting value fails to parse.
	ErrInvalidSettingValue = errors.New("invalid setting value")
)

// SettingErrorCode defines error codes for setting errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSettingNotFound     SettingErrorCode = "SET-010001"
	ErrCodeInvalidSettingValue SettingErrorCode = "SET-010002"
)

// SettingError represents a setting error with code and message.
type SettingError struct {
	Code    SettingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingError) Unwrap() error {
	return e.Err
}

// NewSettingError creates a new SettingError with the given code and message.
func NewSettingError(code SettingErrorCode, message string, err error) *SettingError {
	return &SettingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
