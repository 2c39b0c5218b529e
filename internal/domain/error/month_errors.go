// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

import "errors"

// Month key domain errors. These signal malformed input to the month
// utilities and are never retried.
var (
	// ErrInvalidMonthKey is returned when a month key is not well-formed "YYYY-MM".
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrInvalidMonthCount is returned when a month range is requested with a count below 1.
	ErrInvalidMonthCount = errors.New("invalid month count")
)

// MonthErrorCode defines error codes for month key errors.
// Format: MON-XXYYYY where XX is category and YYYY is specific error.
type MonthErrorCode string

const (
	// Format errors (01XXXX)
	ErrCodeInvalidMonthKey   MonthErrorCode = "MON-010001"
	ErrCodeInvalidMonthCount MonthErrorCode = "MON-010002"
)

// MonthError represents a month key format error with code and message.
type MonthError struct {
	Code    MonthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MonthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MonthError) Unwrap() error {
	return e.Err
}

// NewMonthError creates a new MonthError with the given code and message.
func NewMonthError(code MonthErrorCode, message string, err error) *MonthError {
	return &MonthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
