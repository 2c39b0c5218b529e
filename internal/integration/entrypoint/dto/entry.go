package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for recording an entry.
// MonthKey defaults to the plan's start month when omitted.
type CreateEntryRequest struct {
	PlanID   string     `json:"plan_id" binding:"required,uuid"`
	MonthKey string     `json:"month_key,omitempty"`
	Amount   string     `json:"amount" binding:"required"`
	Date     *time.Time `json:"date,omitempty"`
	Notes    string     `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Amount    *string    `json:"amount,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	ClearDate bool       `json:"clear_date,omitempty"`
	Notes     *string    `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// MoveEntryRequest represents the request body for moving an entry to
// another month.
type MoveEntryRequest struct {
	MonthKey string `json:"month_key" binding:"required"`
}

// EntryResponse represents a single entry in API responses.
type EntryResponse struct {
	ID        string     `json:"id"`
	PlanID    string     `json:"plan_id"`
	MonthKey  string     `json:"month_key"`
	Amount    string     `json:"amount"`
	Date      *time.Time `json:"date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:        entry.ID.String(),
		PlanID:    entry.PlanID.String(),
		MonthKey:  entry.MonthKey,
		Amount:    entry.Amount.String(),
		Date:      entry.Date,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToEntryListResponse converts domain entries to an EntryListResponse.
func ToEntryListResponse(entries []*entity.Entry) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryResponse(entry)
	}
	return EntryListResponse{
		Entries: responses,
	}
}
