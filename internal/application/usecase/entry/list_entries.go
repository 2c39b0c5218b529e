package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// ListEntriesInput represents the input for listing entries. All filters
// are optional; month bounds are inclusive.
type ListEntriesInput struct {
	PlanID    *uuid.UUID
	FromMonth string
	ToMonth   string
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.Entry
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{entryRepo: entryRepo}
}

// Execute performs the entry listing.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if input.FromMonth != "" {
		if _, err := valueobject.ParseMonthKey(input.FromMonth); err != nil {
			return nil, err
		}
	}
	if input.ToMonth != "" {
		if _, err := valueobject.ParseMonthKey(input.ToMonth); err != nil {
			return nil, err
		}
	}

	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{
		PlanID:    input.PlanID,
		FromMonth: input.FromMonth,
		ToMonth:   input.ToMonth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}
