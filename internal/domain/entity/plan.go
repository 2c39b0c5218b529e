// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanFrequency represents how often a plan is expected to occur.
type PlanFrequency string

const (
	PlanFrequencyOneTime  PlanFrequency = "one-time"
	PlanFrequencyWeekly   PlanFrequency = "weekly"
	PlanFrequencyBiweekly PlanFrequency = "biweekly"
	PlanFrequencyMonthly  PlanFrequency = "monthly"
)

// PlanStatus represents the lifecycle state of a plan.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
)

// Plan represents a recurring or one-time financial commitment. The expected
// amount is always non-negative; direction comes from the category type,
// never from the sign.
type Plan struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
	Frequency      PlanFrequency
	StartMonth     string  // canonical "YYYY-MM" month key
	EndMonth       *string // inclusive; nil means open-ended
	Status         PlanStatus
	DayOfMonth     *int // presentation-only hint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPlan creates a new Plan entity in the active state.
func NewPlan(
	categoryID uuid.UUID,
	name string,
	expectedAmount decimal.Decimal,
	frequency PlanFrequency,
	startMonth string,
	endMonth *string,
	dayOfMonth *int,
) *Plan {
	now := time.Now().UTC()

	return &Plan{
		ID:             uuid.New(),
		CategoryID:     categoryID,
		Name:           name,
		ExpectedAmount: expectedAmount,
		Frequency:      frequency,
		StartMonth:     startMonth,
		EndMonth:       endMonth,
		Status:         PlanStatusActive,
		DayOfMonth:     dayOfMonth,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ActiveIn reports whether the plan has an expected occurrence in the given
// month. Month keys compare lexicographically, which matches chronological
// order for the canonical zero-padded form.
func (p *Plan) ActiveIn(monthKey string) bool {
	if p.Status == PlanStatusCompleted {
		return false
	}
	if monthKey < p.StartMonth {
		return false
	}
	if p.EndMonth != nil && monthKey > *p.EndMonth {
		return false
	}
	if p.Frequency == PlanFrequencyOneTime {
		// A one-time plan occurs in its start month and nowhere else,
		// regardless of any end month set on it.
		return monthKey == p.StartMonth
	}
	return true
}

// IsOneTime reports whether the plan is a one-time commitment.
func (p *Plan) IsOneTime() bool {
	return p.Frequency == PlanFrequencyOneTime
}
