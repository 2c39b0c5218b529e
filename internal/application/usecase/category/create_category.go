// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
)

// hexColorRegex is compiled once at package level for performance.
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Color string // Optional, defaults to DefaultCategoryColor
	Icon  string // Optional, defaults to DefaultCategoryIcon
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if len(input.Name) == 0 || len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if input.Type != entity.CategoryTypeIncome && input.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be income or expense",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if input.Color != "" && !hexColorRegex.MatchString(input.Color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#XXXXXX)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	existing, err := uc.categoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("category %q already exists", input.Name),
			domainerror.ErrCategoryNameExists,
		)
	}

	// Apply default values for optional fields (Application layer responsibility)
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(input.Name, input.Type, color, icon)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
