package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
)

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create creates a new plan in the database.
func (r *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a plan by its ID.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planModel model.PlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindAll retrieves all plans ordered by creation time.
func (r *planRepository) FindAll(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []model.PlanModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.Plan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// CountByCategory returns the number of plans referencing a category.
func (r *planRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing plan in the database.
func (r *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).Save(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a plan and its entries. The entry delete is explicit so
// the cascade holds on databases where the foreign key constraint was not
// migrated.
func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.EntryModel{}, "plan_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PlanModel{}, "id = ?", id).Error
	})
}
