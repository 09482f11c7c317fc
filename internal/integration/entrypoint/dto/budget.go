// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/plata-app/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting a category budget.
type SetBudgetRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=64"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}

// BudgetResponse represents a single category budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain CategoryBudget entity to a response DTO.
func ToBudgetResponse(budget *entity.CategoryBudget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category,
		Amount:    budget.Amount.String(),
		Month:     budget.MonthAnchor.Format("2006-01"),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
