package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
	"github.com/cashflow-tracker/backend/internal/integration/persistence/model"
)

// settingRepository implements the adapter.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance.
func NewSettingRepository(db *gorm.DB) adapter.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindByKey retrieves a setting by key.
func (r *settingRepository) FindByKey(ctx context.Context, key string) (*entity.Setting, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// FindAll retrieves all settings.
func (r *settingRepository) FindAll(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []model.SettingModel
	result := r.db.WithContext(ctx).Order("key ASC").Find(&settingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	settings := make([]*entity.Setting, len(settingModels))
	for i, sm := range settingModels {
		settings[i] = sm.ToEntity()
	}
	return settings, nil
}

// Upsert creates or replaces a setting value.
func (r *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingModel := model.SettingFromEntity(setting)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
