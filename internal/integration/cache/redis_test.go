package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*projectionCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &projectionCache{client: client}, mr
}

func testSummaries(t *testing.T) []entity.MonthSummary {
	t.Helper()

	category := &entity.Category{
		ID:   uuid.New(),
		Name: "Housing",
		Type: entity.CategoryTypeExpense,
	}
	plan := &entity.Plan{
		ID:             uuid.New(),
		CategoryID:     category.ID,
		Name:           "Rent",
		ExpectedAmount: decimal.NewFromInt(1200),
		Frequency:      entity.PlanFrequencyMonthly,
		StartMonth:     "2025-01",
		Status:         entity.PlanStatusActive,
	}
	entry := &entity.Entry{
		ID:       uuid.New(),
		PlanID:   plan.ID,
		MonthKey: "2025-01",
		Amount:   decimal.NewFromInt(1180),
	}

	expected := entity.NewExpectedItem("2025-02", plan, category)
	expected.WouldCauseDebt = true
	realized := entity.NewRealizedItem("2025-01", entry, plan, category)

	return []entity.MonthSummary{
		{
			MonthKey:           "2025-01",
			DisplayName:        "Jan 2025",
			Items:              []entity.MonthItem{realized},
			ExpectedBalance:    decimal.NewFromInt(-1180),
			ActualBalance:      decimal.NewFromInt(-1180),
			CumulativeExpected: decimal.NewFromInt(-1180),
			CumulativeActual:   decimal.NewFromInt(-1180),
		},
		{
			MonthKey:           "2025-02",
			DisplayName:        "Feb 2025",
			Items:              []entity.MonthItem{expected},
			ExpectedBalance:    decimal.NewFromInt(-1200),
			CumulativeExpected: decimal.NewFromInt(-2380),
			CumulativeActual:   decimal.NewFromInt(-1180),
		},
	}
}

func TestProjectionCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on absent key", func(t *testing.T) {
		c, _ := newTestCache(t)

		got, found, err := c.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found || got != nil {
			t.Errorf("expected miss, got found=%v summaries=%v", found, got)
		}
	})

	t.Run("set then get round-trips summaries", func(t *testing.T) {
		c, _ := newTestCache(t)
		summaries := testSummaries(t)

		if err := c.Set(ctx, "snap", summaries, time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		got, found, err := c.Get(ctx, "snap")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !found {
			t.Fatal("expected hit after set")
		}
		if len(got) != len(summaries) {
			t.Fatalf("expected %d summaries, got %d", len(summaries), len(got))
		}

		jan := got[0]
		if jan.MonthKey != "2025-01" || jan.DisplayName != "Jan 2025" {
			t.Errorf("unexpected first month: %s %s", jan.MonthKey, jan.DisplayName)
		}
		if !jan.ActualBalance.Equal(decimal.NewFromInt(-1180)) {
			t.Errorf("expected actual balance -1180, got %s", jan.ActualBalance)
		}
		if len(jan.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(jan.Items))
		}
		if jan.Items[0].Kind() != entity.MonthItemRealized {
			t.Errorf("expected realized item, got %s", jan.Items[0].Kind())
		}
		entry, ok := jan.Items[0].Entry()
		if !ok {
			t.Fatal("expected realized item to carry its entry")
		}
		if !entry.Amount.Equal(decimal.NewFromInt(1180)) {
			t.Errorf("expected entry amount 1180, got %s", entry.Amount)
		}

		feb := got[1]
		if len(feb.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(feb.Items))
		}
		item := feb.Items[0]
		if item.Kind() != entity.MonthItemExpected {
			t.Errorf("expected expected item, got %s", item.Kind())
		}
		if !item.WouldCauseDebt {
			t.Error("expected WouldCauseDebt to survive the round trip")
		}
		if _, ok := item.Entry(); ok {
			t.Error("expected item must not carry an entry")
		}
		if item.Plan().Name != "Rent" {
			t.Errorf("expected plan Rent, got %s", item.Plan().Name)
		}
		if !feb.CumulativeExpected.Equal(decimal.NewFromInt(-2380)) {
			t.Errorf("expected cumulative -2380, got %s", feb.CumulativeExpected)
		}
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c, mr := newTestCache(t)

		if err := c.Set(ctx, "snap", testSummaries(t), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		mr.FastForward(2 * time.Minute)

		_, found, err := c.Get(ctx, "snap")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if found {
			t.Error("expected miss after expiry")
		}
	})

	t.Run("corrupt value is treated as a miss", func(t *testing.T) {
		c, mr := newTestCache(t)

		if err := mr.Set(keyPrefix+"snap", "{not json"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		_, found, err := c.Get(ctx, "snap")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if found {
			t.Error("expected corrupt value to read as a miss")
		}
	})
}
