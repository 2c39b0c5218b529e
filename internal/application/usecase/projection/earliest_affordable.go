// Package projection contains the balance-projection engine and its use cases.
package projection

import (
	"context"

	"github.com/shopspring/decimal"
)

// EarliestAffordableInput represents the input for an affordability query.
type EarliestAffordableInput struct {
	Amount     decimal.Decimal
	StartMonth string // optional; defaults to the current calendar month
	Months     int    // optional; defaults to DefaultWindowMonths
}

// EarliestAffordableOutput represents the output of an affordability query.
type EarliestAffordableOutput struct {
	MonthKey    string
	DisplayName string
	Found       bool
}

// EarliestAffordableUseCase answers "from which month on could I afford
// this amount", scanning the projected cumulative expected balance.
type EarliestAffordableUseCase struct {
	getProjection *GetProjectionUseCase
}

// NewEarliestAffordableUseCase creates a new EarliestAffordableUseCase instance.
func NewEarliestAffordableUseCase(getProjection *GetProjectionUseCase) *EarliestAffordableUseCase {
	return &EarliestAffordableUseCase{
		getProjection: getProjection,
	}
}

// Execute performs the affordability query.
func (uc *EarliestAffordableUseCase) Execute(
	ctx context.Context,
	input EarliestAffordableInput,
) (*EarliestAffordableOutput, error) {
	projection, err := uc.getProjection.Execute(ctx, GetProjectionInput{
		StartMonth: input.StartMonth,
		Months:     input.Months,
	})
	if err != nil {
		return nil, err
	}

	monthKey, found := EarliestAffordableMonth(input.Amount, projection.Summaries)
	if !found {
		return &EarliestAffordableOutput{Found: false}, nil
	}

	for i := range projection.Summaries {
		if projection.Summaries[i].MonthKey == monthKey {
			return &EarliestAffordableOutput{
				MonthKey:    monthKey,
				DisplayName: projection.Summaries[i].DisplayName,
				Found:       true,
			}, nil
		}
	}
	return &EarliestAffordableOutput{MonthKey: monthKey, Found: true}, nil
}
