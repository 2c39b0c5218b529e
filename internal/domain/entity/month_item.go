// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// MonthItemKind tags the two variants of a MonthItem.
type MonthItemKind string

const (
	// MonthItemExpected is a plan occurrence with no fulfilling entry yet.
	MonthItemExpected MonthItemKind = "expected"
	// MonthItemRealized is a recorded entry, carrying its plan by reference.
	MonthItemRealized MonthItemKind = "realized"
)

// MonthItem is a derived, non-persisted line item for a single month. It is
// a tagged variant: an expected item wraps only a plan, a realized item
// wraps an entry plus its plan. The payloads are unexported so a realized
// entry can never be read off an expected item.
type MonthItem struct {
	kind     MonthItemKind
	monthKey string
	category *Category
	plan     *Plan
	entry    *Entry

	// WouldCauseDebt is set during projection on expected expense items
	// whose application drives the intra-month running balance negative.
	WouldCauseDebt bool
}

// NewExpectedItem creates an expected MonthItem for an unfulfilled plan
// occurrence in the given month.
func NewExpectedItem(monthKey string, plan *Plan, category *Category) MonthItem {
	return MonthItem{
		kind:     MonthItemExpected,
		monthKey: monthKey,
		category: category,
		plan:     plan,
	}
}

// NewRealizedItem creates a realized MonthItem for a recorded entry in the
// given month.
func NewRealizedItem(monthKey string, entry *Entry, plan *Plan, category *Category) MonthItem {
	return MonthItem{
		kind:     MonthItemRealized,
		monthKey: monthKey,
		category: category,
		plan:     plan,
		entry:    entry,
	}
}

// Kind returns the variant tag.
func (i *MonthItem) Kind() MonthItemKind {
	return i.kind
}

// MonthKey returns the month the item belongs to.
func (i *MonthItem) MonthKey() string {
	return i.monthKey
}

// Plan returns the owning plan. Both variants carry one.
func (i *MonthItem) Plan() *Plan {
	return i.plan
}

// Category returns the plan's category.
func (i *MonthItem) Category() *Category {
	return i.category
}

// Entry returns the recorded entry and true for realized items, nil and
// false for expected ones.
func (i *MonthItem) Entry() (*Entry, bool) {
	if i.kind != MonthItemRealized {
		return nil, false
	}
	return i.entry, true
}

// Amount returns the item's unsigned amount: the recorded amount for
// realized items, the plan's expected amount otherwise.
func (i *MonthItem) Amount() decimal.Decimal {
	if i.kind == MonthItemRealized {
		return i.entry.Amount
	}
	return i.plan.ExpectedAmount
}

// SignedAmount returns the amount with direction applied from the category
// type: positive for income, negative for expense.
func (i *MonthItem) SignedAmount() decimal.Decimal {
	if i.category.Type == CategoryTypeExpense {
		return i.Amount().Neg()
	}
	return i.Amount()
}

// IsExpense reports whether the item belongs to an expense category.
func (i *MonthItem) IsExpense() bool {
	return i.category.Type == CategoryTypeExpense
}
