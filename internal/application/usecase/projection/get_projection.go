// Package projection contains the balance-projection engine and its use cases.
package projection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/domain/valueobject"
)

// DefaultWindowMonths is the projection window used when the caller does not
// request a specific length.
const DefaultWindowMonths = 12

// GetProjectionInput represents the input for computing a projection window.
type GetProjectionInput struct {
	StartMonth string // optional; defaults to the current calendar month
	Months     int    // optional; defaults to DefaultWindowMonths
}

// GetProjectionOutput represents the output of computing a projection
// window. StartMonth, Months and StartingBalance echo the resolved inputs.
type GetProjectionOutput struct {
	StartMonth      string
	Months          int
	StartingBalance decimal.Decimal
	Summaries       []entity.MonthSummary
	FromCache       bool
}

// GetProjectionUseCase loads a full snapshot of plans, entries, categories
// and the starting balance, and projects the running balance across the
// requested window. Results are cached keyed by a hash of the snapshot, so
// any mutation naturally produces a fresh key and a stale window can never
// be served.
type GetProjectionUseCase struct {
	categoryRepo adapter.CategoryRepository
	planRepo     adapter.PlanRepository
	entryRepo    adapter.EntryRepository
	settingRepo  adapter.SettingRepository
	cache        adapter.ProjectionCache // optional
	cacheTTL     time.Duration
}

// NewGetProjectionUseCase creates a new GetProjectionUseCase instance.
// The cache may be nil, in which case every call computes from scratch.
func NewGetProjectionUseCase(
	categoryRepo adapter.CategoryRepository,
	planRepo adapter.PlanRepository,
	entryRepo adapter.EntryRepository,
	settingRepo adapter.SettingRepository,
	cache adapter.ProjectionCache,
	cacheTTL time.Duration,
) *GetProjectionUseCase {
	return &GetProjectionUseCase{
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
		entryRepo:    entryRepo,
		settingRepo:  settingRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// Execute computes the projection window.
func (uc *GetProjectionUseCase) Execute(
	ctx context.Context,
	input GetProjectionInput,
) (*GetProjectionOutput, error) {
	start := input.StartMonth
	if start == "" {
		// The only clock read in the projection path: the default
		// window start. The projection itself stays deterministic.
		start = valueobject.MonthKeyForDate(time.Now())
	}
	months := input.Months
	if months == 0 {
		months = DefaultWindowMonths
	}

	monthKeys, err := valueobject.MonthRange(start, months)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	plans, err := uc.planRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	entries, err := uc.entryRepo.FindByFilter(ctx, adapter.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	startingBalance, err := uc.loadStartingBalance(ctx)
	if err != nil {
		return nil, err
	}

	key := snapshotKey(start, months, startingBalance, categories, plans, entries)

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("projection cache read failed", "error", err)
		} else if ok {
			return &GetProjectionOutput{
				StartMonth:      start,
				Months:          months,
				StartingBalance: startingBalance,
				Summaries:       cached,
				FromCache:       true,
			}, nil
		}
	}

	summaries, err := Project(monthKeys, categories, plans, entries, startingBalance)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, summaries, uc.cacheTTL); err != nil {
			slog.Warn("projection cache write failed", "error", err)
		}
	}

	return &GetProjectionOutput{
		StartMonth:      start,
		Months:          months,
		StartingBalance: startingBalance,
		Summaries:       summaries,
		FromCache:       false,
	}, nil
}

// loadStartingBalance reads the starting-balance setting, treating an absent
// setting as zero.
func (uc *GetProjectionUseCase) loadStartingBalance(ctx context.Context) (decimal.Decimal, error) {
	setting, err := uc.settingRepo.FindByKey(ctx, entity.SettingStartingBalance)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to load starting balance: %w", err)
	}

	balance, err := decimal.NewFromString(setting.Value)
	if err != nil {
		return decimal.Zero, domainerror.NewSettingError(
			domainerror.ErrCodeInvalidSettingValue,
			fmt.Sprintf("starting balance %q is not a valid decimal", setting.Value),
			domainerror.ErrInvalidSettingValue,
		)
	}
	return balance, nil
}

// snapshotKey derives a cache key covering every projection input: the
// window, the starting balance, and the identity plus last-modified time of
// every category, plan and entry.
func snapshotKey(
	start string,
	months int,
	startingBalance decimal.Decimal,
	categories []*entity.Category,
	plans []*entity.Plan,
	entries []*entity.Entry,
) string {
	h := sha256.New()
	fmt.Fprintf(h, "window:%s:%d;balance:%s;", start, months, startingBalance.String())
	for _, category := range categories {
		fmt.Fprintf(h, "c:%s:%d;", category.ID, category.UpdatedAt.UnixNano())
	}
	for _, plan := range plans {
		fmt.Fprintf(h, "p:%s:%d;", plan.ID, plan.UpdatedAt.UnixNano())
	}
	for _, entry := range entries {
		fmt.Fprintf(h, "e:%s:%d;", entry.ID, entry.UpdatedAt.UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil))
}
