// Package projection contains the balance-projection engine and its use cases.
package projection

import (
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// EarliestAffordableMonth scans summaries in their given chronological order
// and returns the key of the first month whose cumulative expected balance
// covers amount. The second return value is false when no month qualifies.
func EarliestAffordableMonth(amount decimal.Decimal, summaries []entity.MonthSummary) (string, bool) {
	for i := range summaries {
		if summaries[i].CumulativeExpected.GreaterThanOrEqual(amount) {
			return summaries[i].MonthKey, true
		}
	}
	return "", false
}
