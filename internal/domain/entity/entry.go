// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry represents a recorded transaction fulfilling one occurrence of a
// plan. Every entry belongs to exactly one plan; there is no freestanding
// entry. The month it is recorded into may differ from the plan's nominal
// month, since entries can be moved.
type Entry struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	MonthKey  string // canonical "YYYY-MM" month key the entry is homed in
	Amount    decimal.Decimal
	Date      *time.Time // optional transaction date
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry creates a new Entry entity.
func NewEntry(
	planID uuid.UUID,
	monthKey string,
	amount decimal.Decimal,
	date *time.Time,
	notes string,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:        uuid.New(),
		PlanID:    planID,
		MonthKey:  monthKey,
		Amount:    amount,
		Date:      date,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
