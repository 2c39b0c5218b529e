// Package projection contains the balance-projection engine and its use cases.
package projection

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// planMonth identifies one plan occurrence slot within one month.
type planMonth struct {
	planID uuid.UUID
	month  string
}

// BuildMonthItems merges plans and entries into a deduplicated, ordered item
// list per requested month.
//
// Every active plan contributes exactly one expected occurrence per month,
// regardless of frequency granularity; the occurrence is suppressed when an
// entry already fulfills it in that month. Recorded entries always produce a
// realized item in the month they are homed in, even when their plan is not
// nominally active there (entries can be moved to any month).
//
// Items are ordered income before expense; within a direction the emission
// order is stable (plans in input order, then entries in input order).
//
// An entry referencing an unknown plan, or a plan referencing an unknown
// category, aborts the whole call: dropping the record silently would corrupt
// the cumulative balances of every later month.
func BuildMonthItems(
	categories []*entity.Category,
	plans []*entity.Plan,
	entries []*entity.Entry,
	monthKeys []string,
) (map[string][]entity.MonthItem, error) {
	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	planByID := make(map[uuid.UUID]*entity.Plan, len(plans))
	for _, plan := range plans {
		if _, ok := categoryByID[plan.CategoryID]; !ok {
			return nil, domainerror.NewProjectionError(
				domainerror.ErrCodePlanCategoryNotFound,
				fmt.Sprintf("plan %s references unknown category %s", plan.ID, plan.CategoryID),
				domainerror.ErrPlanCategoryNotFound,
			)
		}
		planByID[plan.ID] = plan
	}

	fulfilled := make(map[planMonth]int)
	entriesByMonth := make(map[string][]*entity.Entry)
	for _, entry := range entries {
		if _, ok := planByID[entry.PlanID]; !ok {
			return nil, domainerror.NewProjectionError(
				domainerror.ErrCodeEntryPlanNotFound,
				fmt.Sprintf("entry %s references unknown plan %s", entry.ID, entry.PlanID),
				domainerror.ErrEntryPlanNotFound,
			)
		}
		fulfilled[planMonth{entry.PlanID, entry.MonthKey}]++
		entriesByMonth[entry.MonthKey] = append(entriesByMonth[entry.MonthKey], entry)
	}

	itemsByMonth := make(map[string][]entity.MonthItem, len(monthKeys))
	for _, month := range monthKeys {
		items := make([]entity.MonthItem, 0, len(plans))

		for _, plan := range plans {
			if !plan.ActiveIn(month) {
				continue
			}
			if fulfilled[planMonth{plan.ID, month}] > 0 {
				// The occurrence is already covered by a recorded entry.
				continue
			}
			items = append(items, entity.NewExpectedItem(month, plan, categoryByID[plan.CategoryID]))
		}

		for _, entry := range entriesByMonth[month] {
			plan := planByID[entry.PlanID]
			items = append(items, entity.NewRealizedItem(month, entry, plan, categoryByID[plan.CategoryID]))
		}

		// Income before expense, presentation grouping only. The sort is
		// stable so insertion order survives within each direction.
		sort.SliceStable(items, func(a, b int) bool {
			return !items[a].IsExpense() && items[b].IsExpense()
		})

		itemsByMonth[month] = items
	}

	return itemsByMonth, nil
}
