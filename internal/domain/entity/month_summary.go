// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// MonthSummary is a derived, non-persisted aggregate for one month of a
// projection window. Cumulative figures carry the starting balance through
// this month inclusive.
type MonthSummary struct {
	MonthKey    string
	DisplayName string
	Items       []MonthItem

	// ExpectedBalance nets every item at its expected (or recorded) amount.
	ExpectedBalance decimal.Decimal
	// ActualBalance nets realized items only.
	ActualBalance decimal.Decimal

	CumulativeExpected decimal.Decimal
	CumulativeActual   decimal.Decimal
}
