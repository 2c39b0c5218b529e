package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// GetPlanInput represents the input for fetching a single plan.
type GetPlanInput struct {
	ID uuid.UUID
}

// GetPlanOutput represents the output of fetching a single plan.
type GetPlanOutput struct {
	Plan *entity.Plan
}

// GetPlanUseCase handles fetching a single plan.
type GetPlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(planRepo adapter.PlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

// Execute fetches the plan by id.
func (uc *GetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				fmt.Sprintf("plan %s not found", input.ID),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	return &GetPlanOutput{Plan: plan}, nil
}
