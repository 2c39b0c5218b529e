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
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// MoveEntryInput represents the input for re-homing an entry into another month.
type MoveEntryInput struct {
	ID       uuid.UUID
	MonthKey string
}

// MoveEntryOutput represents the output of moving an entry.
type MoveEntryOutput struct {
	Entry *entity.Entry
}

// MoveEntryUseCase handles moving an entry between months.
type MoveEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewMoveEntryUseCase creates a new MoveEntryUseCase instance.
func NewMoveEntryUseCase(entryRepo adapter.EntryRepository) *MoveEntryUseCase {
	return &MoveEntryUseCase{entryRepo: entryRepo}
}

// Execute re-homes the entry into the target month. The entry keeps
// fulfilling its plan's occurrence in the plan's nominal month; only the
// month whose actual balance it affects changes.
func (uc *MoveEntryUseCase) Execute(ctx context.Context, input MoveEntryInput) (*MoveEntryOutput, error) {
	if _, err := valueobject.ParseMonthKey(input.MonthKey); err != nil {
		return nil, err
	}

	e, err := uc.entryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				fmt.Sprintf("entry %s not found", input.ID),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	if e.MonthKey == input.MonthKey {
		return &MoveEntryOutput{Entry: e}, nil
	}

	e.MonthKey = input.MonthKey
	e.UpdatedAt = time.Now().UTC()
	if err := uc.entryRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to move entry: %w", err)
	}

	return &MoveEntryOutput{Entry: e}, nil
}
