package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// GetEntryInput represents the input for fetching a single entry.
type GetEntryInput struct {
	ID uuid.UUID
}

// GetEntryOutput represents the output of fetching a single entry.
type GetEntryOutput struct {
	Entry *entity.Entry
}

// GetEntryUseCase handles fetching a single entry.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{entryRepo: entryRepo}
}

// Execute fetches the entry by id.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
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

	return &GetEntryOutput{Entry: e}, nil
}
