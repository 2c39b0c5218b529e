package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// UpdatePlanInput represents the input for plan updates. Nil fields are
// left unchanged. ClearEndMonth removes the end month, turning the plan
// open-ended again.
type UpdatePlanInput struct {
	ID             uuid.UUID
	CategoryID     *uuid.UUID
	Name           *string
	ExpectedAmount *decimal.Decimal
	Frequency      *entity.PlanFrequency
	StartMonth     *string
	EndMonth       *string
	ClearEndMonth  bool
	Status         *entity.PlanStatus
	DayOfMonth     *int
}

// UpdatePlanOutput represents the output of a plan update.
type UpdatePlanOutput struct {
	Plan *entity.Plan
}

// UpdatePlanUseCase handles plan update logic.
type UpdatePlanUseCase struct {
	planRepo     adapter.PlanRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase instance.
func NewUpdatePlanUseCase(planRepo adapter.PlanRepository, categoryRepo adapter.CategoryRepository) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute applies the update to the stored plan. Already-recorded entries
// are never touched; projection rebuilds expected items from the updated
// plan on the next read.
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, input UpdatePlanInput) (*UpdatePlanOutput, error) {
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

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanCategoryMissing,
				fmt.Sprintf("category %s not found", *input.CategoryID),
				domainerror.ErrPlanCategoryMissing,
			)
		}
		plan.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.ExpectedAmount != nil {
		plan.ExpectedAmount = *input.ExpectedAmount
	}
	if input.Frequency != nil {
		plan.Frequency = *input.Frequency
	}
	if input.StartMonth != nil {
		plan.StartMonth = *input.StartMonth
	}
	if input.ClearEndMonth {
		plan.EndMonth = nil
	} else if input.EndMonth != nil {
		plan.EndMonth = input.EndMonth
	}
	if input.Status != nil {
		switch *input.Status {
		case entity.PlanStatusActive, entity.PlanStatusCompleted:
			plan.Status = *input.Status
		default:
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeMissingPlanFields,
				fmt.Sprintf("status %q must be active or completed", *input.Status),
				domainerror.ErrMissingPlanFields,
			)
		}
	}
	if input.DayOfMonth != nil {
		plan.DayOfMonth = input.DayOfMonth
	}

	if err := validatePlanFields(plan.Name, plan.ExpectedAmount, plan.Frequency, plan.StartMonth, plan.EndMonth, plan.DayOfMonth); err != nil {
		return nil, err
	}

	plan.UpdatedAt = time.Now().UTC()
	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	return &UpdatePlanOutput{Plan: plan}, nil
}
