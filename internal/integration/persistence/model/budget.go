// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/domain/entity"
)

// CategoryBudgetModel represents the category_budgets table in the database.
// (user_id, category, month_anchor) is unique: setting a budget for the
// same category and month again replaces the row.
type CategoryBudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month"`
	Category    string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_budget_user_category_month"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthAnchor time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budget_user_category_month"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CategoryBudgetModel.
func (CategoryBudgetModel) TableName() string {
	return "category_budgets"
}

// ToEntity converts a CategoryBudgetModel to a domain CategoryBudget entity.
func (m *CategoryBudgetModel) ToEntity() *entity.CategoryBudget {
	return &entity.CategoryBudget{
		ID:          m.ID,
		UserID:      m.UserID,
		Category:    m.Category,
		Amount:      m.Amount,
		MonthAnchor: m.MonthAnchor,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetFromEntity creates a CategoryBudgetModel from a domain CategoryBudget entity.
func BudgetFromEntity(budget *entity.CategoryBudget) *CategoryBudgetModel {
	return &CategoryBudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Category:    budget.Category,
		Amount:      budget.Amount,
		MonthAnchor: budget.MonthAnchor,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}
