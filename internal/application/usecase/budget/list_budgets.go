// Package budget contains category budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing current-month budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.CategoryBudget
}

// ListBudgetsUseCase lists the user's budgets for the current calendar month.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute retrieves all budgets anchored at the current month.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, entity.MonthAnchorFor(uc.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{Budgets: budgets}, nil
}
