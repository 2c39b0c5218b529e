// Package error defines domain-specific errors for the Cashflow Tracker application.
package error

// ServerErrorCode defines error codes for transport-level failures.
// Format: SRV-XXYYYY where XX is category and YYYY is specific error.
type ServerErrorCode string

const (
	ErrCodeRateLimited ServerErrorCode = "SRV-010001"
)
