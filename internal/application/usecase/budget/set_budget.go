// Package budget contains category budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// MaxCategoryLength is the maximum allowed length for category labels.
const MaxCategoryLength = 64

// SetBudgetInput represents the input for setting a category budget.
type SetBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
}

// SetBudgetOutput represents the output of setting a category budget.
type SetBudgetOutput struct {
	Budget *entity.CategoryBudget
}

// SetBudgetUseCase creates or updates the budget for a category in the
// current calendar month. At most one budget row exists per
// (user, category, month); setting it again replaces the amount.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.DashboardCache
	clock      adapter.Clock
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute upserts the category budget for the current month.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetCategory,
			"category cannot be empty",
			domainerror.ErrEmptyBudgetCategory,
		)
	}
	if len(category) > MaxCategoryLength {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetCategory,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrEmptyBudgetCategory,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	budget := entity.NewCategoryBudget(
		input.UserID,
		category,
		input.Amount,
		entity.MonthAnchorFor(uc.clock.Now()),
	)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	if err := uc.cache.InvalidateUser(ctx, input.UserID.String()); err != nil {
		slog.Warn("dashboard cache invalidation failed", "user_id", input.UserID, "error", err)
	}

	return &SetBudgetOutput{Budget: budget}, nil
}
