package projection

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

func TestProject(t *testing.T) {
	income := testCategory("Salary", entity.CategoryTypeIncome)
	expense := testCategory("Housing", entity.CategoryTypeExpense)
	categories := []*entity.Category{income, expense}

	t.Run("three month salary and rent scenario", func(t *testing.T) {
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")

		months := []string{"2025-01", "2025-02", "2025-03"}
		summaries, err := Project(months, categories, []*entity.Plan{salary, rent}, nil, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summaries) != 3 {
			t.Fatalf("expected 3 summaries, got %d", len(summaries))
		}

		wantCumulative := []int64{1800, 3600, 5400}
		for i, summary := range summaries {
			if !summary.ExpectedBalance.Equal(decimal.NewFromInt(1800)) {
				t.Errorf("month %s: expected balance 1800, got %s", summary.MonthKey, summary.ExpectedBalance)
			}
			if !summary.CumulativeExpected.Equal(decimal.NewFromInt(wantCumulative[i])) {
				t.Errorf("month %s: expected cumulative %d, got %s", summary.MonthKey, wantCumulative[i], summary.CumulativeExpected)
			}
			if !summary.ActualBalance.IsZero() {
				t.Errorf("month %s: expected actual balance 0 with no entries, got %s", summary.MonthKey, summary.ActualBalance)
			}
		}
		if summaries[0].DisplayName != "Jan 2025" {
			t.Errorf("expected display name Jan 2025, got %s", summaries[0].DisplayName)
		}
	})

	t.Run("cumulative expected is non-decreasing under pure income", func(t *testing.T) {
		salary := testPlan(income, "Salary", 100, entity.PlanFrequencyMonthly, "2020-01")
		freelance := testPlan(income, "Freelance", 55, entity.PlanFrequencyMonthly, "2020-06")

		months := make([]string, 0, 36)
		current := "2020-01"
		months = append(months, current)
		for i := 1; i < 36; i++ {
			year := 2020 + i/12
			month := i%12 + 1
			months = append(months, formatMonth(year, month))
		}

		summaries, err := Project(months, categories, []*entity.Plan{salary, freelance}, nil, decimal.NewFromInt(-100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		previous := decimal.NewFromInt(-100)
		for _, summary := range summaries {
			if summary.CumulativeExpected.LessThan(previous) {
				t.Fatalf("month %s: cumulative expected decreased from %s to %s", summary.MonthKey, previous, summary.CumulativeExpected)
			}
			previous = summary.CumulativeExpected
		}
	})

	t.Run("cumulative conservation across the window", func(t *testing.T) {
		salary := testPlan(income, "Salary", 2750, entity.PlanFrequencyMonthly, "2025-01")
		rent := testPlan(expense, "Rent", 1333, entity.PlanFrequencyMonthly, "2025-01")
		partial := testEntry(rent, "2025-02", 1300)

		months := []string{"2025-01", "2025-02", "2025-03", "2025-04"}
		start := decimal.RequireFromString("123.45")
		summaries, err := Project(months, categories, []*entity.Plan{salary, rent}, []*entity.Entry{partial}, start)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		runningExpected := start
		runningActual := start
		for _, summary := range summaries {
			runningExpected = runningExpected.Add(summary.ExpectedBalance)
			runningActual = runningActual.Add(summary.ActualBalance)
			if !summary.CumulativeExpected.Equal(runningExpected) {
				t.Errorf("month %s: cumulative expected %s, want %s", summary.MonthKey, summary.CumulativeExpected, runningExpected)
			}
			if !summary.CumulativeActual.Equal(runningActual) {
				t.Errorf("month %s: cumulative actual %s, want %s", summary.MonthKey, summary.CumulativeActual, runningActual)
			}
		}
	})

	t.Run("no rounding drift with cent amounts over long windows", func(t *testing.T) {
		subscription := entity.NewPlan(expense.ID, "Streaming", decimal.RequireFromString("9.99"), entity.PlanFrequencyMonthly, "2020-01", nil, nil)

		months := make([]string, 0, 120)
		for i := 0; i < 120; i++ {
			months = append(months, formatMonth(2020+i/12, i%12+1))
		}
		summaries, err := Project(months, categories, []*entity.Plan{subscription}, nil, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := decimal.RequireFromString("-1198.80") // 120 * 9.99
		last := summaries[len(summaries)-1].CumulativeExpected
		if !last.Equal(want) {
			t.Errorf("expected cumulative %s after 120 months, got %s", want, last)
		}
	})

	t.Run("actual balance counts realized items at recorded amounts", func(t *testing.T) {
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		paycheck := testEntry(salary, "2025-01", 3100)

		summaries, err := Project([]string{"2025-01"}, categories, []*entity.Plan{salary}, []*entity.Entry{paycheck}, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !summaries[0].ExpectedBalance.Equal(decimal.NewFromInt(3100)) {
			t.Errorf("expected balance 3100, got %s", summaries[0].ExpectedBalance)
		}
		if !summaries[0].ActualBalance.Equal(decimal.NewFromInt(3100)) {
			t.Errorf("actual balance 3100, got %s", summaries[0].ActualBalance)
		}
		if !summaries[0].CumulativeActual.Equal(decimal.NewFromInt(3100)) {
			t.Errorf("cumulative actual 3100, got %s", summaries[0].CumulativeActual)
		}
	})

	t.Run("flags an expected expense that drives the balance negative", func(t *testing.T) {
		car := testPlan(expense, "Car repair", 500, entity.PlanFrequencyOneTime, "2025-01")

		summaries, err := Project([]string{"2025-01"}, categories, []*entity.Plan{car}, nil, decimal.NewFromInt(100))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		summary := summaries[0]
		if !summary.ExpectedBalance.Equal(decimal.NewFromInt(-500)) {
			t.Errorf("expected balance -500, got %s", summary.ExpectedBalance)
		}
		if len(summary.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(summary.Items))
		}
		if !summary.Items[0].WouldCauseDebt {
			t.Error("expected the expense item to be flagged WouldCauseDebt")
		}
	})

	t.Run("income applied first keeps an affordable expense unflagged", func(t *testing.T) {
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")

		summaries, err := Project([]string{"2025-01"}, categories, []*entity.Plan{rent, salary}, nil, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range summaries[0].Items {
			if summaries[0].Items[i].WouldCauseDebt {
				t.Errorf("item %s should not be flagged", summaries[0].Items[i].Plan().Name)
			}
		}
	})

	t.Run("realized expenses are never flagged", func(t *testing.T) {
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")
		paid := testEntry(rent, "2025-01", 1200)

		summaries, err := Project([]string{"2025-01"}, categories, []*entity.Plan{rent}, []*entity.Entry{paid}, decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summaries[0].Items[0].WouldCauseDebt {
			t.Error("realized items must not carry the debt warning")
		}
	})

	t.Run("identical inputs produce identical output", func(t *testing.T) {
		salary := testPlan(income, "Salary", 3000, entity.PlanFrequencyMonthly, "2025-01")
		rent := testPlan(expense, "Rent", 1200, entity.PlanFrequencyMonthly, "2025-01")
		paid := testEntry(rent, "2025-01", 1180)

		months := []string{"2025-01", "2025-02"}
		first, err := Project(months, categories, []*entity.Plan{salary, rent}, []*entity.Entry{paid}, decimal.NewFromInt(50))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Project(months, categories, []*entity.Plan{salary, rent}, []*entity.Entry{paid}, decimal.NewFromInt(50))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first {
			if !first[i].CumulativeExpected.Equal(second[i].CumulativeExpected) ||
				!first[i].CumulativeActual.Equal(second[i].CumulativeActual) ||
				len(first[i].Items) != len(second[i].Items) {
				t.Fatalf("month %s: projections differ between identical calls", first[i].MonthKey)
			}
		}
	})
}

func formatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
