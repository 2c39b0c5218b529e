package setting

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashflow-tracker/backend/internal/application/adapter"
	"github.com/cashflow-tracker/backend/internal/domain/entity"
	domainerror "github.com/cashflow-tracker/backend/internal/domain/error"
)

// GetSettingInput represents the input for fetching a setting by key.
type GetSettingInput struct {
	Key string
}

// GetSettingOutput represents the output of fetching a setting.
type GetSettingOutput struct {
	Setting *entity.Setting
}

// GetSettingUseCase handles fetching a single setting.
type GetSettingUseCase struct {
	settingRepo adapter.SettingRepository
}

// NewGetSettingUseCase creates a new GetSettingUseCase instance.
func NewGetSettingUseCase(settingRepo adapter.SettingRepository) *GetSettingUseCase {
	return &GetSettingUseCase{settingRepo: settingRepo}
}

// Execute fetches the setting by key.
func (uc *GetSettingUseCase) Execute(ctx context.Context, input GetSettingInput) (*GetSettingOutput, error) {
	s, err := uc.settingRepo.FindByKey(ctx, input.Key)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingNotFound) {
			return nil, domainerror.NewSettingError(
				domainerror.ErrCodeSettingNotFound,
				fmt.Sprintf("setting %q not found", input.Key),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}

	return &GetSettingOutput{Setting: s}, nil
}
