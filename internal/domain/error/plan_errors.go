// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

import "errors"

// Plan domain errors.
var (
	// ErrPlanNotFound is returned when a plan is not found in the system.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidPlanFrequency is returned when the plan frequency is invalid.
	ErrInvalidPlanFrequency = errors.New("invalid plan frequency")

	// ErrInvalidPlanAmount is returned when the expected amount is negative.
	ErrInvalidPlanAmount = errors.New("expected amount must not be negative")

	// ErrPlanNameRequired is returned when the plan name is empty.
	ErrPlanNameRequired = errors.New("plan name is required")

	// ErrInvalidPlanMonthOrder is returned when end_month precedes start_month.
	ErrInvalidPlanMonthOrder = errors.New("end month must not precede start month")

	// ErrPlanCategoryMissing is returned when the referenced category does not exist.
	ErrPlanCategoryMissing = errors.New("category not found")

	// ErrInvalidDayOfMonth is returned when the day-of-month hint is outside 1-31.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrMissingPlanFields is returned when required plan fields are missing or malformed.
	ErrMissingPlanFields = errors.New("missing or malformed plan fields")
)

// PlanErrorCode defines error codes for plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePlanNotFound          PlanErrorCode = "PLN-010001"
	ErrCodeInvalidPlanFrequency  PlanErrorCode = "PLN-010002"
	ErrCodeInvalidPlanAmount     PlanErrorCode = "PLN-010003"
	ErrCodePlanNameRequired      PlanErrorCode = "PLN-010004"
	ErrCodeInvalidPlanMonthOrder PlanErrorCode = "PLN-010005"
	ErrCodePlanCategoryMissing   PlanErrorCode = "PLN-010006"
	ErrCodeInvalidDayOfMonth     PlanErrorCode = "PLN-010007"
	ErrCodeMissingPlanFields     PlanErrorCode = "PLN-010008"
)

// PlanError represents a plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
