// Package plan contains plan-related use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// MaxPlanNameLength is the maximum allowed length for plan names.
const MaxPlanNameLength = 100

// CreatePlanInput represents the input for plan creation.
type CreatePlanInput struct {
	CategoryID     uuid.UUID
	Name           string
	ExpectedAmount decimal.Decimal
	Frequency      entity.PlanFrequency
	StartMonth     string
	EndMonth       *string
	DayOfMonth     *int
}

// CreatePlanOutput represents the output of plan creation.
type CreatePlanOutput struct {
	Plan *entity.Plan
}

// CreatePlanUseCase handles plan creation logic.
type CreatePlanUseCase struct {
	planRepo     adapter.PlanRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(planRepo adapter.PlanRepository, categoryRepo adapter.CategoryRepository) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	if err := validatePlanFields(input.Name, input.ExpectedAmount, input.Frequency, input.StartMonth, input.EndMonth, input.DayOfMonth); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanCategoryMissing,
			fmt.Sprintf("category %s not found", input.CategoryID),
			domainerror.ErrPlanCategoryMissing,
		)
	}

	plan := entity.NewPlan(
		input.CategoryID,
		input.Name,
		input.ExpectedAmount,
		input.Frequency,
		input.StartMonth,
		input.EndMonth,
		input.DayOfMonth,
	)
	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return &CreatePlanOutput{Plan: plan}, nil
}

// validatePlanFields checks the invariants shared by plan creation and update.
func validatePlanFields(
	name string,
	amount decimal.Decimal,
	frequency entity.PlanFrequency,
	startMonth string,
	endMonth *string,
	dayOfMonth *int,
) error {
	if len(name) == 0 || len(name) > MaxPlanNameLength {
		return domainerror.NewPlanError(
			domainerror.ErrCodePlanNameRequired,
			fmt.Sprintf("plan name must be between 1 and %d characters", MaxPlanNameLength),
			domainerror.ErrPlanNameRequired,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanAmount,
			"expected amount must not be negative; direction comes from the category type",
			domainerror.ErrInvalidPlanAmount,
		)
	}

	switch frequency {
	case entity.PlanFrequencyOneTime, entity.PlanFrequencyWeekly, entity.PlanFrequencyBiweekly, entity.PlanFrequencyMonthly:
	default:
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanFrequency,
			fmt.Sprintf("frequency %q must be one of: one-time, weekly, biweekly, monthly", frequency),
			domainerror.ErrInvalidPlanFrequency,
		)
	}

	if _, err := valueobject.ParseMonthKey(startMonth); err != nil {
		return err
	}
	if endMonth != nil {
		if _, err := valueobject.ParseMonthKey(*endMonth); err != nil {
			return err
		}
		if *endMonth < startMonth {
			return domainerror.NewPlanError(
				domainerror.ErrCodeInvalidPlanMonthOrder,
				fmt.Sprintf("end month %s precedes start month %s", *endMonth, startMonth),
				domainerror.ErrInvalidPlanMonthOrder,
			)
		}
	}

	if dayOfMonth != nil && (*dayOfMonth < 1 || *dayOfMonth > 31) {
		return domainerror.NewPlanError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("day of month %d must be between 1 and 31", *dayOfMonth),
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	return nil
}
