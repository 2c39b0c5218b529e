package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// DeletePlanInput represents the input for plan deletion.
type DeletePlanInput struct {
	ID uuid.UUID
}

// DeletePlanUseCase handles plan deletion logic.
type DeletePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo adapter.PlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo}
}

// Execute deletes the plan. Entries recorded against the plan are removed
// with it; the repository cascades the delete.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) error {
	if _, err := uc.planRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return domainerror.NewPlanError(
				domainerror.ErrCodePlanNotFound,
				fmt.Sprintf("plan %s not found", input.ID),
				err,
			)
		}
		return fmt.Errorf("failed to find plan: %w", err)
	}

	if err := uc.planRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	return nil
}
