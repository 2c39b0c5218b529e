// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the direction of a category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a labeled direction for plans in the Cashflow Tracker
// system. Icon and color are presentation-only; the projection engine reads
// nothing but ID and Type.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon is applied in the Application
// layer (UseCase) before calling this constructor.
func NewCategory(name string, categoryType CategoryType, color, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Color:     color,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
