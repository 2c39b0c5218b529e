// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// SettingRepository defines the interface for setting persistence operations.
type SettingRepository interface {
	// FindByKey retrieves a setting by key.
	FindByKey(ctx context.Context, key string) (*entity.Setting, error)

	// FindAll retrieves all settings.
	FindAll(ctx context.Context) ([]*entity.Setting, error)

	// Upsert creates or replaces a setting value.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
