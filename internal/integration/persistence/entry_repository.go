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

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, ordered by month key
// then creation time.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter) ([]*entity.Entry, error) {
	query := r.db.WithContext(ctx).Model(&model.EntryModel{})
	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.FromMonth != "" {
		query = query.Where("month_key >= ?", filter.FromMonth)
	}
	if filter.ToMonth != "" {
		query = query.Where("month_key <= ?", filter.ToMonth)
	}

	var entryModels []model.EntryModel
	result := query.Order("month_key ASC, created_at ASC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.Entry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// CountByPlan returns the number of entries recorded against a plan.
func (r *entryRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("plan_id = ?", planID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an entry from the database.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
