// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryBudget represents a monthly spending ceiling for one category.
//
// MonthAnchor is always normalized to the first day of the target calendar
// month at midnight UTC and acts as the join key against current-month
// expense aggregates. (UserID, Category, MonthAnchor) is unique; setting a
// budget for an existing category/month updates the stored row in place.
type CategoryBudget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	Amount      decimal.Decimal // Non-negative ceiling, whole currency units
	MonthAnchor time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategoryBudget creates a new CategoryBudget entity for the month
// containing anchor.
func NewCategoryBudget(userID uuid.UUID, category string, amount decimal.Decimal, anchor time.Time) *CategoryBudget {
	now := time.Now().UTC()

	return &CategoryBudget{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		MonthAnchor: MonthAnchorFor(anchor),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MonthAnchorFor normalizes an instant to the first day of its calendar
// month at midnight UTC.
func MonthAnchorFor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
