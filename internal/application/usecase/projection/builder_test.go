package projection

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

func testCategory(name string, categoryType entity.CategoryType) *entity.Category {
	return entity.NewCategory(name, categoryType, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
}

func testPlan(category *entity.Category, name string, amount int64, frequency entity.PlanFrequency, startMonth string) *entity.Plan {
	return entity.NewPlan(category.ID, name, decimal.NewFromInt(amount), frequency, startMonth, nil, nil)
}

func testEntry(plan *entity.Plan, monthKey string, amount int64) *entity.Entry {
	return entity.NewEntry(plan.ID, monthKey, decimal.NewFromInt(amount), nil, "")
}

func TestBuildMonthItems(t *testing.T) {
	income := testCategory("Salary", entity.CategoryTypeIncome)
	expense := testCategory("Housing", entity.CategoryTypeExpense)
	categories := []*entity.Category{income, expense}

	t.Run("emits one expected item per active plan per month", func(t *testing.T) {
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")

		items, err := BuildMonthItems(categories, []*entity.Plan{salary, rent}, nil, []string{"2025-01", "2025-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, month := range []string{"2025-01", "2025-02"} {
			if len(items[month]) != 2 {
				t.Errorf("month %s: expected 2 items, got %d", month, len(items[month]))
			}
		}
	})

	t.Run("weekly and biweekly plans still expect a single occurrence per month", func(t *testing.T) {
		groceries := testPlan(expense, "Groceries", 100, entity.PlanFrequencyWeekly, "2025-01")
		payday := testPlan(income, "Paycheck", 1500, entity.PlanFrequencyBiweekly, "2025-01")

		items, err := BuildMonthItems(categories, []*entity.Plan{groceries, payday}, nil, []string{"2025-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items["2025-01"]) != 2 {
			t.Errorf("expected 2 items, got %d", len(items["2025-01"]))
		}
	})

	t.Run("fulfilling entry replaces the expected item", func(t *testing.T) {
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")
		paid := testEntry(rent, "2025-01", 1180)

		items, err := BuildMonthItems(categories, []*entity.Plan{rent}, []*entity.Entry{paid}, []string{"2025-01", "2025-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		january := items["2025-01"]
		if len(january) != 1 {
			t.Fatalf("expected exactly 1 item in January, got %d", len(january))
		}
		entry, realized := january[0].Entry()
		if !realized {
			t.Fatal("expected the January item to be realized")
		}
		if entry.ID != paid.ID {
			t.Errorf("expected entry %s, got %s", paid.ID, entry.ID)
		}
		if !january[0].Amount().Equal(decimal.NewFromInt(1180)) {
			t.Errorf("expected realized amount 1180, got %s", january[0].Amount())
		}

		february := items["2025-02"]
		if len(february) != 1 || february[0].Kind() != entity.MonthItemExpected {
			t.Errorf("expected a single expected item in February, got %+v", february)
		}
	})

	t.Run("moved entry appears in its host month even when the plan is inactive there", func(t *testing.T) {
		gift := testPlan(expense, "Gift", 200, entity.PlanFrequencyOneTime, "2025-03")
		moved := testEntry(gift, "2025-05", 200)

		items, err := BuildMonthItems(categories, []*entity.Plan{gift}, []*entity.Entry{moved}, []string{"2025-03", "2025-04", "2025-05"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items["2025-05"]) != 1 {
			t.Fatalf("expected the moved entry in May, got %d items", len(items["2025-05"]))
		}
		if _, realized := items["2025-05"][0].Entry(); !realized {
			t.Error("expected a realized item in May")
		}
		// March keeps the expected occurrence since nothing fulfills it there.
		if len(items["2025-03"]) != 1 || items["2025-03"][0].Kind() != entity.MonthItemExpected {
			t.Errorf("expected an expected item in March, got %+v", items["2025-03"])
		}
		if len(items["2025-04"]) != 0 {
			t.Errorf("expected no items in April, got %d", len(items["2025-04"]))
		}
	})

	t.Run("one-time plan is active only in its start month", func(t *testing.T) {
		end := "2025-06"
		bonus := entity.NewPlan(income.ID, "Bonus", decimal.NewFromInt(500), entity.PlanFrequencyOneTime, "2025-03", &end, nil)

		months := []string{"2025-02", "2025-03", "2025-04", "2025-05", "2025-06"}
		items, err := BuildMonthItems(categories, []*entity.Plan{bonus}, nil, months)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, month := range months {
			want := 0
			if month == "2025-03" {
				want = 1
			}
			if len(items[month]) != want {
				t.Errorf("month %s: expected %d items, got %d", month, want, len(items[month]))
			}
		}
	})

	t.Run("completed plans are never active", func(t *testing.T) {
		done := testPlan(expense, "Laptop", 900, entity.PlanFrequencyOneTime, "2025-02")
		done.Status = entity.PlanStatusCompleted

		items, err := BuildMonthItems(categories, []*entity.Plan{done}, nil, []string{"2025-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items["2025-02"]) != 0 {
			t.Errorf("expected no items for a completed plan, got %d", len(items["2025-02"]))
		}
	})

	t.Run("income items precede expense items with stable order", func(t *testing.T) {
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		freelance := testPlan(income, "Freelance", 400, entity.PlanFrequencyMonthly, "2025-01")
		utilities := testPlan(expense, "Utilities", 150, entity.PlanFrequencyMonthly, "2025-01")

		plans := []*entity.Plan{rent, salary, freelance, utilities}
		items, err := BuildMonthItems(categories, plans, nil, []string{"2025-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, 0, 4)
		for i := range items["2025-01"] {
			got = append(got, items["2025-01"][i].Plan().Name)
		}
		want := []string{"Salary", "Freelance", "Rent", "Utilities"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("entry referencing an unknown plan aborts the call", func(t *testing.T) {
		orphan := &entity.Entry{ID: uuid.New(), PlanID: uuid.New(), MonthKey: "2025-01", Amount: decimal.NewFromInt(10)}

		_, err := BuildMonthItems(categories, nil, []*entity.Entry{orphan}, []string{"2025-01"})
		var projErr *domainerror.ProjectionError
		if !errors.As(err, &projErr) || projErr.Code != domainerror.ErrCodeEntryPlanNotFound {
			t.Errorf("expected entry-plan validation error, got %v", err)
		}
	})

	t.Run("plan referencing an unknown category aborts the call", func(t *testing.T) {
		stray := entity.NewPlan(uuid.New(), "Stray", decimal.NewFromInt(10), entity.PlanFrequencyMonthly, "2025-01", nil, nil)

		_, err := BuildMonthItems(categories, []*entity.Plan{stray}, nil, []string{"2025-01"})
		var projErr *domainerror.ProjectionError
		if !errors.As(err, &projErr) || projErr.Code != domainerror.ErrCodePlanCategoryNotFound {
			t.Errorf("expected plan-category validation error, got %v", err)
		}
	})
}
