// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for category budget persistence operations.
type BudgetRepository interface {
	// Upsert creates the budget, or replaces the amount when a budget
	// already exists for the same user, category and month.
	Upsert(ctx context.Context, budget *entity.CategoryBudget) error

	// FindByUserAndMonth retrieves all budgets for a user anchored at the given month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthAnchor time.Time) ([]*entity.CategoryBudget, error)

	// DeleteByIDAndUser removes a budget owned by the given user.
	DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error

	// ExistsByIDAndUser checks if a budget exists for a given ID and user.
	ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
}
