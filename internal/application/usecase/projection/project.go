// Package projection contains the balance-projection engine and its use cases.
package projection

import (
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// Project walks the requested months in chronological order and produces one
// MonthSummary per month, carrying cumulative expected and actual balances
// forward from the starting balance.
//
// The item builder runs once for the whole window, never per month, so
// entries moved across months stay deduplicated. Expected expense items that
// drive the intra-month running balance negative are flagged WouldCauseDebt;
// the flag depends on item order within the month, which approximates
// intra-month sequencing without true day-level dates.
//
// Project is a pure function of its inputs: identical inputs yield identical
// output, with no clock reads and no hidden state.
func Project(
	monthKeys []string,
	categories []*entity.Category,
	plans []*entity.Plan,
	entries []*entity.Entry,
	startingBalance decimal.Decimal,
) ([]entity.MonthSummary, error) {
	itemsByMonth, err := BuildMonthItems(categories, plans, entries, monthKeys)
	if err != nil {
		return nil, err
	}

	cumulativeExpected := startingBalance
	cumulativeActual := startingBalance

	summaries := make([]entity.MonthSummary, 0, len(monthKeys))
	for _, month := range monthKeys {
		displayName, err := valueobject.MonthDisplayName(month)
		if err != nil {
			return nil, err
		}

		items := itemsByMonth[month]

		expectedBalance := decimal.Zero
		actualBalance := decimal.Zero
		running := cumulativeExpected
		for i := range items {
			delta := items[i].SignedAmount()
			expectedBalance = expectedBalance.Add(delta)
			if _, realized := items[i].Entry(); realized {
				actualBalance = actualBalance.Add(delta)
			}

			running = running.Add(delta)
			if items[i].Kind() == entity.MonthItemExpected &&
				items[i].IsExpense() &&
				running.IsNegative() {
				items[i].WouldCauseDebt = true
			}
		}

		cumulativeExpected = cumulativeExpected.Add(expectedBalance)
		cumulativeActual = cumulativeActual.Add(actualBalance)

		summaries = append(summaries, entity.MonthSummary{
			MonthKey:           month,
			DisplayName:        displayName,
			Items:              items,
			ExpectedBalance:    expectedBalance,
			ActualBalance:      actualBalance,
			CumulativeExpected: cumulativeExpected,
			CumulativeActual:   cumulativeActual,
		})
	}

	return summaries, nil
}
