package plan

import (
	"context"
	"fmt"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// ListPlansInput represents the input for listing plans.
type ListPlansInput struct {
	// Status filters by plan status when set.
	Status *entity.PlanStatus
}

// ListPlansOutput represents the output of listing plans.
type ListPlansOutput struct {
	Plans []*entity.Plan
}

// ListPlansUseCase handles plan listing logic.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

// Execute performs the plan listing.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	if input.Status != nil {
		filtered := make([]*entity.Plan, 0, len(plans))
		for _, p := range plans {
			if p.Status == *input.Status {
				filtered = append(filtered, p)
			}
		}
		plans = filtered
	}

	return &ListPlansOutput{Plans: plans}, nil
}
