// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

import "errors"

// Projection domain errors. A projection either computes a fully valid
// result or fails the whole call; silently dropping a record would corrupt
// cumulative balances for every later month.
var (
	// ErrEntryPlanNotFound is returned when an entry references a plan that does not exist.
	ErrEntryPlanNotFound = errors.New("entry references unknown plan")

	// ErrPlanCategoryNotFound is returned when a plan references a category that does not exist.
	ErrPlanCategoryNotFound = errors.New("plan references unknown category")
)

// ProjectionErrorCode defines error codes for projection errors.
// Format: PRJ-XXYYYY where XX is category and YYYY is specific error.
type ProjectionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryPlanNotFound    ProjectionErrorCode = "PRJ-010001"
	ErrCodePlanCategoryNotFound ProjectionErrorCode = "PRJ-010002"
)

// ProjectionError represents a data-integrity error discovered while
// building month items.
type ProjectionError struct {
	Code    ProjectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProjectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProjectionError) Unwrap() error {
	return e.Err
}

// NewProjectionError creates a new ProjectionError with the given code and message.
func NewProjectionError(code ProjectionErrorCode, message string, err error) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
