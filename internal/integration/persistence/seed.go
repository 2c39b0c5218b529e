package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// defaultCategory describes one seeded category row.
type defaultCategory struct {
	name  string
	typ   entity.CategoryType
	icon  string
	color string
}

// defaultCategories are created on first startup so a fresh install has a
// usable set of directions before the user defines their own.
var defaultCategories = []defaultCategory{
	{"Salary", entity.CategoryTypeIncome, "💼", "#22c55e"},
	{"Freelance", entity.CategoryTypeIncome, "💻", "#10b981"},
	{"Rental", entity.CategoryTypeIncome, "🏠", "#14b8a6"},
	{"Other Income", entity.CategoryTypeIncome, "💰", "#06b6d4"},
	{"Housing", entity.CategoryTypeExpense, "🏡", "#ef4444"},
	{"Utilities", entity.CategoryTypeExpense, "⚡", "#f97316"},
	{"Groceries", entity.CategoryTypeExpense, "🛒", "#f59e0b"},
	{"Transport", entity.CategoryTypeExpense, "🚗", "#eab308"},
	{"Subscriptions", entity.CategoryTypeExpense, "📺", "#84cc16"},
	{"Other Expense", entity.CategoryTypeExpense, "💸", "#64748b"},
}

// SeedDefaults populates default categories and the starting-balance
// setting on an empty database. Non-empty tables are left untouched.
func SeedDefaults(ctx context.Context, categoryRepo adapter.CategoryRepository, settingRepo adapter.SettingRepository) error {
	count, err := categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		for _, dc := range defaultCategories {
			category := entity.NewCategory(dc.name, dc.typ, dc.color, dc.icon)
			if err := categoryRepo.Create(ctx, category); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", dc.name, err)
			}
		}
	}

	if _, err := settingRepo.FindByKey(ctx, entity.SettingStartingBalance); err == nil {
		return nil
	}
	setting := &entity.Setting{
		Key:       entity.SettingStartingBalance,
		Value:     "0",
		UpdatedAt: time.Now().UTC(),
	}
	if err := settingRepo.Upsert(ctx, setting); err != nil {
		return fmt.Errorf("failed to seed starting balance: %w", err)
	}
	return nil
}
