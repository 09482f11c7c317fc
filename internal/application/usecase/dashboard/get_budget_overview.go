// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// GetBudgetOverviewInput represents the input for getting the budget overview.
type GetBudgetOverviewInput struct {
	UserID uuid.UUID
}

// GetBudgetOverviewOutput represents the reconciled budget view for the
// current month.
type GetBudgetOverviewOutput struct {
	Month  time.Time    `json:"month"`
	Rows   []BudgetRow  `json:"rows"`
	Totals BudgetTotals `json:"totals"`
}

// GetBudgetOverviewUseCase joins current-month spend against category budgets.
type GetBudgetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	cache           adapter.DashboardCache
	clock           adapter.Clock
}

// NewGetBudgetOverviewUseCase creates a new GetBudgetOverviewUseCase instance.
func NewGetBudgetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *GetBudgetOverviewUseCase {
	return &GetBudgetOverviewUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute returns the budget-vs-actual overview for the calendar month
// containing now, sorted by actual spend descending. Served from cache
// when possible.
func (uc *GetBudgetOverviewUseCase) Execute(ctx context.Context, input GetBudgetOverviewInput) (*GetBudgetOverviewOutput, error) {
	cacheKey := budgetCacheKeyPrefix + input.UserID.String()

	var cached GetBudgetOverviewOutput
	if err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		slog.Warn("dashboard cache read failed", "key", cacheKey, "error", err)
	}

	now := uc.clock.Now()
	monthAnchor := entity.MonthAnchorFor(now)

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardDataUnavailable,
			"failed to load transactions for budget overview",
			fmt.Errorf("find transactions: %w", err),
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, monthAnchor)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardDataUnavailable,
			"failed to load budgets for budget overview",
			fmt.Errorf("find budgets: %w", err),
		)
	}

	// The reconciler expects current-month spend only, so restrict the
	// category aggregation to the month window before joining.
	currentMonth := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx != nil && IsThisMonth(tx.CreatedAt, now) {
			currentMonth = append(currentMonth, tx)
		}
	}

	aggregated := Aggregate(currentMonth, now)
	reconciled := Reconcile(budgets, aggregated.ExpensesByCategory)

	sort.Slice(reconciled.Rows, func(i, j int) bool {
		return reconciled.Rows[i].Actual.GreaterThan(reconciled.Rows[j].Actual)
	})

	output := &GetBudgetOverviewOutput{
		Month:  monthAnchor,
		Rows:   reconciled.Rows,
		Totals: reconciled.Totals,
	}

	if err := uc.cache.SetJSON(ctx, cacheKey, output); err != nil {
		slog.Warn("dashboard cache write failed", "key", cacheKey, "error", err)
	}

	return output, nil
}
