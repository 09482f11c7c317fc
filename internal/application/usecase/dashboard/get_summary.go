// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/adapter"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// Cache key prefixes for the dashboard views.
const (
	summaryCacheKeyPrefix = "dashboard:summary:"
	trendCacheKeyPrefix   = "dashboard:trend:"
	budgetCacheKeyPrefix  = "dashboard:budget:"
)

// GetSummaryInput represents the input for getting the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the dashboard summary for a user.
type GetSummaryOutput struct {
	TotalSpent         decimal.Decimal            `json:"total_spent"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	Balance            decimal.Decimal            `json:"balance"`
	TodayExpenses      decimal.Decimal            `json:"today_expenses"`
	WeekExpenses       decimal.Decimal            `json:"week_expenses"`
	MonthExpenses      decimal.Decimal            `json:"month_expenses"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}

// GetSummaryUseCase computes the headline dashboard numbers for a user.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.DashboardCache
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute returns the dashboard summary, serving from cache when possible.
// Cache failures are treated as misses; the dashboard is always recomputable
// from the transaction set.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	cacheKey := summaryCacheKeyPrefix + input.UserID.String()

	var cached GetSummaryOutput
	if err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		slog.Warn("dashboard cache read failed", "key", cacheKey, "error", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardDataUnavailable,
			"failed to load transactions for summary",
			fmt.Errorf("find transactions: %w", err),
		)
	}

	result := Aggregate(transactions, uc.clock.Now())

	output := &GetSummaryOutput{
		TotalSpent:         result.TotalSpent,
		TotalIncome:        result.TotalIncome,
		Balance:            result.TotalIncome.Sub(result.TotalSpent),
		TodayExpenses:      result.TodayExpenses,
		WeekExpenses:       result.WeekExpenses,
		MonthExpenses:      result.MonthExpenses,
		ExpensesByCategory: result.ExpensesByCategory,
	}

	if err := uc.cache.SetJSON(ctx, cacheKey, output); err != nil {
		slog.Warn("dashboard cache write failed", "key", cacheKey, "error", err)
	}

	return output, nil
}
