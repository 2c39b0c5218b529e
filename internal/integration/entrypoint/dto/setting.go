package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// UpdateSettingRequest represents the request body for a setting upsert.
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// SettingResponse represents a single setting in API responses.
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingListResponse represents the response for listing settings.
type SettingListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// ToSettingResponse converts a domain Setting entity to a SettingResponse DTO.
func ToSettingResponse(setting *entity.Setting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}

// ToSettingListResponse converts domain settings to a SettingListResponse.
func ToSettingListResponse(settings []*entity.Setting) SettingListResponse {
	responses := make([]SettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = ToSettingResponse(setting)
	}
	return SettingListResponse{
		Settings: responses,
	}
}
