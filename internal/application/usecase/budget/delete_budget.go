// Package budget contains category budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a category budget.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DeleteBudgetUseCase handles category budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.DashboardCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.DashboardCache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute deletes a budget after verifying ownership.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	exists, err := uc.budgetRepo.ExistsByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check budget ownership: %w", err)
	}
	if !exists {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.budgetRepo.DeleteByIDAndUser(ctx, input.BudgetID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if err := uc.cache.InvalidateUser(ctx, input.UserID.String()); err != nil {
		slog.Warn("dashboard cache invalidation failed", "user_id", input.UserID, "error", err)
	}

	return nil
}
