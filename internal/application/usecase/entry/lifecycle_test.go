package entry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

type fakePlanRepo struct {
	plans map[uuid.UUID]*entity.Plan
}

func newFakePlanRepo(plans ...*entity.Plan) *fakePlanRepo {
	repo := &fakePlanRepo{plans: make(map[uuid.UUID]*entity.Plan)}
	for _, p := range plans {
		repo.plans[p.ID] = p
	}
	return repo
}

func (f *fakePlanRepo) Create(_ context.Context, plan *entity.Plan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, domainerror.ErrPlanNotFound
	}
	return plan, nil
}

func (f *fakePlanRepo) FindAll(_ context.Context) ([]*entity.Plan, error) {
	plans := make([]*entity.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		plans = append(plans, p)
	}
	return plans, nil
}

func (f *fakePlanRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, p := range f.plans {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakePlanRepo) Update(_ context.Context, plan *entity.Plan) error {
	if _, ok := f.plans[plan.ID]; !ok {
		return domainerror.ErrPlanNotFound
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

type fakeEntryRepo struct {
	entries map[uuid.UUID]*entity.Entry
}

func newFakeEntryRepo(entries ...*entity.Entry) *fakeEntryRepo {
	repo := &fakeEntryRepo{entries: make(map[uuid.UUID]*entity.Entry)}
	for _, e := range entries {
		repo.entries[e.ID] = e
	}
	return repo
}

func (f *fakeEntryRepo) Create(_ context.Context, entry *entity.Entry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Entry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryRepo) FindByFilter(_ context.Context, filter adapter.EntryFilter) ([]*entity.Entry, error) {
	var result []*entity.Entry
	for _, e := range f.entries {
		if filter.PlanID != nil && e.PlanID != *filter.PlanID {
			continue
		}
		if filter.FromMonth != "" && e.MonthKey < filter.FromMonth {
			continue
		}
		if filter.ToMonth != "" && e.MonthKey > filter.ToMonth {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeEntryRepo) CountByPlan(_ context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	for _, e := range f.entries {
		if e.PlanID == planID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEntryRepo) Update(_ context.Context, entry *entity.Entry) error {
	if _, ok := f.entries[entry.ID]; !ok {
		return domainerror.ErrEntryNotFound
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeEntryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.entries, id)
	return nil
}

func testPlan(frequency entity.PlanFrequency, status entity.PlanStatus) *entity.Plan {
	now := time.Now().UTC()
	return &entity.Plan{
		ID:             uuid.New(),
		CategoryID:     uuid.New(),
		Name:           "Security deposit",
		ExpectedAmount: decimal.NewFromInt(3000),
		Frequency:      frequency,
		StartMonth:     "2025-02",
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestRecordEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("recording completes an active one-time plan", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyOneTime, entity.PlanStatusActive)
		planRepo := newFakePlanRepo(plan)
		entryRepo := newFakeEntryRepo()
		uc := NewRecordEntryUseCase(entryRepo, planRepo)

		output, err := uc.Execute(ctx, RecordEntryInput{
			PlanID: plan.ID,
			Amount: decimal.NewFromInt(3000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if plan.Status != entity.PlanStatusCompleted {
			t.Errorf("expected plan status %s, got %s", entity.PlanStatusCompleted, plan.Status)
		}
		if output.Entry.MonthKey != plan.StartMonth {
			t.Errorf("expected month key to default to %s, got %s", plan.StartMonth, output.Entry.MonthKey)
		}
	})

	t.Run("recording leaves a monthly plan active", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyMonthly, entity.PlanStatusActive)
		planRepo := newFakePlanRepo(plan)
		uc := NewRecordEntryUseCase(newFakeEntryRepo(), planRepo)

		_, err := uc.Execute(ctx, RecordEntryInput{
			PlanID:   plan.ID,
			MonthKey: "2025-03",
			Amount:   decimal.NewFromInt(1500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if plan.Status != entity.PlanStatusActive {
			t.Errorf("expected plan to stay active, got %s", plan.Status)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyMonthly, entity.PlanStatusActive)
		uc := NewRecordEntryUseCase(newFakeEntryRepo(), newFakePlanRepo(plan))

		_, err := uc.Execute(ctx, RecordEntryInput{
			PlanID: plan.ID,
			Amount: decimal.NewFromInt(-10),
		})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) {
			t.Fatalf("expected EntryError, got %v", err)
		}
		if entryErr.Code != domainerror.ErrCodeInvalidEntryAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEntryAmount, entryErr.Code)
		}
	})

	t.Run("rejects an unknown plan", func(t *testing.T) {
		uc := NewRecordEntryUseCase(newFakeEntryRepo(), newFakePlanRepo())

		_, err := uc.Execute(ctx, RecordEntryInput{
			PlanID: uuid.New(),
			Amount: decimal.NewFromInt(10),
		})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) {
			t.Fatalf("expected EntryError, got %v", err)
		}
		if entryErr.Code != domainerror.ErrCodeEntryPlanMissing {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEntryPlanMissing, entryErr.Code)
		}
	})

	t.Run("rejects a malformed month key", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyMonthly, entity.PlanStatusActive)
		uc := NewRecordEntryUseCase(newFakeEntryRepo(), newFakePlanRepo(plan))

		_, err := uc.Execute(ctx, RecordEntryInput{
			PlanID:   plan.ID,
			MonthKey: "2025-13",
			Amount:   decimal.NewFromInt(10),
		})
		if err == nil {
			t.Fatal("expected error for month 13")
		}
	})
}

func TestDeleteEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the last entry reactivates a one-time plan", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyOneTime, entity.PlanStatusCompleted)
		e := entity.NewEntry(plan.ID, plan.StartMonth, decimal.NewFromInt(3000), nil, "")
		planRepo := newFakePlanRepo(plan)
		entryRepo := newFakeEntryRepo(e)
		uc := NewDeleteEntryUseCase(entryRepo, planRepo)

		if err := uc.Execute(ctx, DeleteEntryInput{ID: e.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if plan.Status != entity.PlanStatusActive {
			t.Errorf("expected plan to revert to active, got %s", plan.Status)
		}
		if _, err := entryRepo.FindByID(ctx, e.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
			t.Error("expected entry to be deleted")
		}
	})

	t.Run("a one-time plan with remaining entries stays completed", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyOneTime, entity.PlanStatusCompleted)
		first := entity.NewEntry(plan.ID, "2025-02", decimal.NewFromInt(1500), nil, "")
		second := entity.NewEntry(plan.ID, "2025-03", decimal.NewFromInt(1500), nil, "")
		uc := NewDeleteEntryUseCase(newFakeEntryRepo(first, second), newFakePlanRepo(plan))

		if err := uc.Execute(ctx, DeleteEntryInput{ID: first.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if plan.Status != entity.PlanStatusCompleted {
			t.Errorf("expected plan to stay completed, got %s", plan.Status)
		}
	})

	t.Run("deleting an entry of a monthly plan does not touch its status", func(t *testing.T) {
		plan := testPlan(entity.PlanFrequencyMonthly, entity.PlanStatusActive)
		e := entity.NewEntry(plan.ID, "2025-02", decimal.NewFromInt(1500), nil, "")
		uc := NewDeleteEntryUseCase(newFakeEntryRepo(e), newFakePlanRepo(plan))

		if err := uc.Execute(ctx, DeleteEntryInput{ID: e.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if plan.Status != entity.PlanStatusActive {
			t.Errorf("expected plan to stay active, got %s", plan.Status)
		}
	})

	t.Run("deleting an unknown entry fails", func(t *testing.T) {
		uc := NewDeleteEntryUseCase(newFakeEntryRepo(), newFakePlanRepo())

		err := uc.Execute(ctx, DeleteEntryInput{ID: uuid.New()})

		var entryErr *domainerror.EntryError
		if !errors.As(err, &entryErr) {
			t.Fatalf("expected EntryError, got %v", err)
		}
		if entryErr.Code != domainerror.ErrCodeEntryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEntryNotFound, entryErr.Code)
		}
	})
}
