// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct{}

// DeleteCategoryUseCase handles category deletion logic. A category that is
// still referenced by plans cannot be deleted; the projection builder treats
// a dangling category reference as a data-integrity error.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	planRepo     adapter.PlanRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, planRepo adapter.PlanRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	inUse, err := uc.planRepo.CountByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count plans for category: %w", err)
	}
	if inUse > 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			fmt.Sprintf("category is referenced by %d plans", inUse),
			domainerror.ErrCategoryInUse,
		)
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{}, nil
}
