// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged. Category type is immutable once created: plans derive
// their direction from it.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Color      *string
	Icon       *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil {
		if len(*input.Name) == 0 || len(*input.Name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTooLong,
				fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTooLong,
			)
		}
		category.Name = *input.Name
	}

	if input.Color != nil {
		if !hexColorRegex.MatchString(*input.Color) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidColorFormat,
				"color must be a valid hex format (#XXXXXX)",
				domainerror.ErrInvalidColorFormat,
			)
		}
		category.Color = *input.Color
	}

	if input.Icon != nil {
		category.Icon = *input.Icon
	}

	category.UpdatedAt = time.Now().UTC()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
