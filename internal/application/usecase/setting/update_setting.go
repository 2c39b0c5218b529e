package setting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// UpdateSettingInput represents the input for creating or replacing a setting.
type UpdateSettingInput struct {
	Key   string
	Value string
}

// UpdateSettingOutput represents the output of a setting update.
type UpdateSettingOutput struct {
	Setting *entity.Setting
}

// UpdateSettingUseCase handles setting upsert logic.
type UpdateSettingUseCase struct {
	settingRepo adapter.SettingRepository
}

// NewUpdateSettingUseCase creates a new UpdateSettingUseCase instance.
func NewUpdateSettingUseCase(settingRepo adapter.SettingRepository) *UpdateSettingUseCase {
	return &UpdateSettingUseCase{settingRepo: settingRepo}
}

// Execute creates or replaces the setting. Values for known numeric keys
// must parse as decimals before they are stored, so projection never hits
// a malformed starting balance at read time.
func (uc *UpdateSettingUseCase) Execute(ctx context.Context, input UpdateSettingInput) (*UpdateSettingOutput, error) {
	if input.Key == "" {
		return nil, domainerror.NewSettingError(
			domainerror.ErrCodeSettingNotFound,
			"setting key is required",
			domainerror.ErrSettingNotFound,
		)
	}

	if input.Key == entity.SettingStartingBalance {
		if _, err := decimal.NewFromString(input.Value); err != nil {
			return nil, domainerror.NewSettingError(
				domainerror.ErrCodeInvalidSettingValue,
				fmt.Sprintf("value %q is not a valid decimal amount", input.Value),
				domainerror.ErrInvalidSettingValue,
			)
		}
	}

	s := &entity.Setting{
		Key:       input.Key,
		Value:     input.Value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.settingRepo.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return &UpdateSettingOutput{Setting: s}, nil
}
