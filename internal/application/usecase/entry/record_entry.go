// Package entry contains entry-related use cases.
package entry

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
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// MaxEntryNotesLength is the maximum allowed length for entry notes.
const MaxEntryNotesLength = 500

// RecordEntryInput represents the input for recording an entry against a plan.
// MonthKey defaults to the plan's start month when empty.
type RecordEntryInput struct {
	PlanID   uuid.UUID
	MonthKey string
	Amount   decimal.Decimal
	Date     *time.Time
	Notes    string
}

// RecordEntryOutput represents the output of recording an entry.
type RecordEntryOutput struct {
	Entry *entity.Entry
}

// RecordEntryUseCase handles entry recording logic.
type RecordEntryUseCase struct {
	entryRepo adapter.EntryRepository
	planRepo  adapter.PlanRepository
}

// NewRecordEntryUseCase creates a new RecordEntryUseCase instance.
func NewRecordEntryUseCase(entryRepo adapter.EntryRepository, planRepo adapter.PlanRepository) *RecordEntryUseCase {
	return &RecordEntryUseCase{
		entryRepo: entryRepo,
		planRepo:  planRepo,
	}
}

// Execute records the entry. Recording an entry against a one-time plan
// marks the plan completed, since its single occurrence is now fulfilled.
func (uc *RecordEntryUseCase) Execute(ctx context.Context, input RecordEntryInput) (*RecordEntryOutput, error) {
	if err := validateEntryFields(input.Amount, input.Notes); err != nil {
		return nil, err
	}

	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPlanNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryPlanMissing,
				fmt.Sprintf("plan %s not found", input.PlanID),
				domainerror.ErrEntryPlanMissing,
			)
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}

	monthKey := input.MonthKey
	if monthKey == "" {
		monthKey = plan.StartMonth
	} else if _, err := valueobject.ParseMonthKey(monthKey); err != nil {
		return nil, err
	}

	e := entity.NewEntry(plan.ID, monthKey, input.Amount, input.Date, input.Notes)
	if err := uc.entryRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	if plan.IsOneTime() && plan.Status == entity.PlanStatusActive {
		plan.Status = entity.PlanStatusCompleted
		plan.UpdatedAt = time.Now().UTC()
		if err := uc.planRepo.Update(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to complete one-time plan: %w", err)
		}
	}

	return &RecordEntryOutput{Entry: e}, nil
}

func validateEntryFields(amount decimal.Decimal, notes string) error {
	if amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must not be negative; direction comes from the category type",
			domainerror.ErrInvalidEntryAmount,
		)
	}
	if len(notes) > MaxEntryNotesLength {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxEntryNotesLength),
			domainerror.ErrEntryNotesTooLong,
		)
	}
	return nil
}
