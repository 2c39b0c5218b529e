// Package setting contains setting-related use cases.
package setting

import (
	"context"
	"fmt"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// ListSettingsOutput represents the output of listing all settings.
type ListSettingsOutput struct {
	Settings []*entity.Setting
}

// ListSettingsUseCase handles setting listing logic.
type ListSettingsUseCase struct {
	settingRepo adapter.SettingRepository
}

// NewListSettingsUseCase creates a new ListSettingsUseCase instance.
func NewListSettingsUseCase(settingRepo adapter.SettingRepository) *ListSettingsUseCase {
	return &ListSettingsUseCase{settingRepo: settingRepo}
}

// Execute lists all settings.
func (uc *ListSettingsUseCase) Execute(ctx context.Context) (*ListSettingsOutput, error) {
	settings, err := uc.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return &ListSettingsOutput{Settings: settings}, nil
}
