// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// EntryFilter defines filter options for listing entries.
type EntryFilter struct {
	PlanID    *uuid.UUID
	FromMonth string // inclusive "YYYY-MM" lower bound, empty for none
	ToMonth   string // inclusive "YYYY-MM" upper bound, empty for none
}

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByFilter retrieves entries matching the filter, ordered by month
	// key then creation time.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*entity.Entry, error)

	// CountByPlan returns the number of entries recorded against a plan.
	CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
