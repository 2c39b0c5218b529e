// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// PlanRepository defines the interface for plan persistence operations.
type PlanRepository interface {
	// Create creates a new plan in the database.
	Create(ctx context.Context, plan *entity.Plan) error

	// FindByID retrieves a plan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// FindAll retrieves all plans ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Plan, error)

	// CountByCategory returns the number of plans referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing plan in the database.
	Update(ctx context.Context, plan *entity.Plan) error

	// Delete removes a plan and cascades to its entries.
	Delete(ctx context.Context, id uuid.UUID) error
}
