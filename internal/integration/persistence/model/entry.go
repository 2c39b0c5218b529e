package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// EntryModel represents the entries table in the database.
type EntryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlanID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MonthKey  string          `gorm:"type:varchar(7);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      *time.Time      `gorm:"type:date"`
	Notes     string          `gorm:"type:varchar(500)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Plan PlanModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:        m.ID,
		PlanID:    m.PlanID,
		MonthKey:  m.MonthKey,
		Amount:    m.Amount,
		Date:      m.Date,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:        entry.ID,
		PlanID:    entry.PlanID,
		MonthKey:  entry.MonthKey,
		Amount:    entry.Amount,
		Date:      entry.Date,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
