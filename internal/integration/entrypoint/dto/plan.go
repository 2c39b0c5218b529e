package dto

import (
	"time"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// CreatePlanRequest represents the request body for plan creation.
type CreatePlanRequest struct {
	CategoryID     string  `json:"category_id" binding:"required,uuid"`
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	ExpectedAmount string  `json:"expected_amount" binding:"required"`
	Frequency      string  `json:"frequency" binding:"required,oneof=one-time weekly biweekly monthly"`
	StartMonth     string  `json:"start_month" binding:"required"`
	EndMonth       *string `json:"end_month,omitempty"`
	DayOfMonth     *int    `json:"day_of_month,omitempty"`
}

// UpdatePlanRequest represents the request body for plan update. Omitted
// fields are left unchanged; an explicit null end_month clears it.
type UpdatePlanRequest struct {
	CategoryID     *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	ExpectedAmount *string `json:"expected_amount,omitempty"`
	Frequency      *string `json:"frequency,omitempty" binding:"omitempty,oneof=one-time weekly biweekly monthly"`
	StartMonth     *string `json:"start_month,omitempty"`
	EndMonth       *string `json:"end_month,omitempty"`
	ClearEndMonth  bool    `json:"clear_end_month,omitempty"`
	Status         *string `json:"status,omitempty" binding:"omitempty,oneof=active completed"`
	DayOfMonth     *int    `json:"day_of_month,omitempty"`
}

// PlanResponse represents a single plan in API responses.
type PlanResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"name"`
	ExpectedAmount string    `json:"expected_amount"`
	Frequency      string    `json:"frequency"`
	StartMonth     string    `json:"start_month"`
	EndMonth       *string   `json:"end_month,omitempty"`
	Status         string    `json:"status"`
	DayOfMonth     *int      `json:"day_of_month,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlanListResponse represents the response for listing plans.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToPlanResponse converts a domain Plan entity to a PlanResponse DTO.
func ToPlanResponse(plan *entity.Plan) PlanResponse {
	return PlanResponse{
		ID:             plan.ID.String(),
		CategoryID:     plan.CategoryID.String(),
		Name:           plan.Name,
		ExpectedAmount: plan.ExpectedAmount.String(),
		Frequency:      string(plan.Frequency),
		StartMonth:     plan.StartMonth,
		EndMonth:       plan.EndMonth,
		Status:         string(plan.Status),
		DayOfMonth:     plan.DayOfMonth,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}
}

// ToPlanListResponse converts domain plans to a PlanListResponse.
func ToPlanListResponse(plans []*entity.Plan) PlanListResponse {
	responses := make([]PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = ToPlanResponse(plan)
	}
	return PlanListResponse{
		Plans: responses,
	}
}
