package model

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// SettingModel represents the settings table in the database.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingModel to a domain Setting entity.
func (m *SettingModel) ToEntity() *entity.Setting {
	return &entity.Setting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

// SettingFromEntity creates a SettingModel from a domain Setting entity.
func SettingFromEntity(setting *entity.Setting) *SettingModel {
	return &SettingModel{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}
