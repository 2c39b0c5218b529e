// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found in the system.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryAmount is returned when the recorded amount is negative.
	ErrInvalidEntryAmount = errors.New("entry amount must not be negative")

	// ErrEntryPlanMissing is returned when the referenced plan does not exist.
	ErrEntryPlanMissing = errors.New("plan not found")

	// ErrEntryNotesTooLong is returned when the entry notes exceed the maximum length.
	ErrEntryNotesTooLong = errors.New("notes too long")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidEntryAmount EntryErrorCode = "ENT-010002"
	ErrCodeEntryPlanMissing   EntryErrorCode = "ENT-010003"
	ErrCodeEntryNotesTooLong  EntryErrorCode = "ENT-010004"
	ErrCodeMissingEntryFields EntryErrorCode = "ENT-010005"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
