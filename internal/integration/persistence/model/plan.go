package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// PlanModel represents the plans table in the database.
type PlanModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	ExpectedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Frequency      string          `gorm:"type:varchar(10);not null"`
	StartMonth     string          `gorm:"type:varchar(7);not null;index"`
	EndMonth       *string         `gorm:"type:varchar(7)"`
	Status         string          `gorm:"type:varchar(10);not null;default:'active'"`
	DayOfMonth     *int            `gorm:"type:smallint"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Category CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the PlanModel.
func (PlanModel) TableName() string {
	return "plans"
}

// ToEntity converts a PlanModel to a domain Plan entity.
func (m *PlanModel) ToEntity() *entity.Plan {
	return &entity.Plan{
		ID:             m.ID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		ExpectedAmount: m.ExpectedAmount,
		Frequency:      entity.PlanFrequency(m.Frequency),
		StartMonth:     m.StartMonth,
		EndMonth:       m.EndMonth,
		Status:         entity.PlanStatus(m.Status),
		DayOfMonth:     m.DayOfMonth,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PlanFromEntity creates a PlanModel from a domain Plan entity.
func PlanFromEntity(plan *entity.Plan) *PlanModel {
	return &PlanModel{
		ID:             plan.ID,
		CategoryID:     plan.CategoryID,
		Name:           plan.Name,
		ExpectedAmount: plan.ExpectedAmount,
		Frequency:      string(plan.Frequency),
		StartMonth:     plan.StartMonth,
		EndMonth:       plan.EndMonth,
		Status:         string(plan.Status),
		DayOfMonth:     plan.DayOfMonth,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}
}
