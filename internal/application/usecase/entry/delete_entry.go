package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	ID uuid.UUID
}

// DeleteEntryUseCase handles entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
	planRepo  adapter.PlanRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository, planRepo adapter.PlanRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
		planRepo:  planRepo,
	}
}

// Execute deletes the entry. Deleting the last entry of a completed
// one-time plan reverts the plan to active, so its expected occurrence
// reappears in projections.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	e, err := uc.entryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				fmt.Sprintf("entry %s not found", input.ID),
				err,
			)
		}
		return fmt.Errorf("failed to find entry: %w", err)
	}

	if err := uc.entryRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	plan, err := uc.planRepo.FindByID(ctx, e.PlanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find plan: %w", err)
	}

	if plan.IsOneTime() && plan.Status == entity.PlanStatusCompleted {
		remaining, err := uc.entryRepo.CountByPlan(ctx, plan.ID)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		if remaining == 0 {
			plan.Status = entity.PlanStatusActive
			plan.UpdatedAt = time.Now().UTC()
			if err := uc.planRepo.Update(ctx, plan); err != nil {
				return fmt.Errorf("failed to revert one-time plan: %w", err)
			}
		}
	}

	return nil
}
