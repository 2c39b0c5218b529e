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
)

// UpdateEntryInput represents the input for entry updates. Nil fields are
// left unchanged. ClearDate removes the transaction date.
type UpdateEntryInput struct {
	ID        uuid.UUID
	Amount    *decimal.Decimal
	Date      *time.Time
	ClearDate bool
	Notes     *string
}

// UpdateEntryOutput represents the output of an entry update.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{entryRepo: entryRepo}
}

// Execute applies the update to the stored entry. Moving an entry to a
// different month goes through MoveEntryUseCase, not here.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
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

	if input.Amount != nil {
		e.Amount = *input.Amount
	}
	if input.ClearDate {
		e.Date = nil
	} else if input.Date != nil {
		e.Date = input.Date
	}
	if input.Notes != nil {
		e.Notes = *input.Notes
	}

	if err := validateEntryFields(e.Amount, e.Notes); err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now().UTC()
	if err := uc.entryRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: e}, nil
}
