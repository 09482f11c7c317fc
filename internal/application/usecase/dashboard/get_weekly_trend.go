// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// GetWeeklyTrendInput represents the input for getting the spending trend.
type GetWeeklyTrendInput struct {
	UserID uuid.UUID
}

// GetWeeklyTrendOutput represents the 4-week spending trend for a user.
type GetWeeklyTrendOutput struct {
	Weeks []WeekBucket `json:"weeks"`
}

// GetWeeklyTrendUseCase computes the trailing 4-week expense trend.
type GetWeeklyTrendUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.DashboardCache
	clock           adapter.Clock
}

// NewGetWeeklyTrendUseCase creates a new GetWeeklyTrendUseCase instance.
func NewGetWeeklyTrendUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *GetWeeklyTrendUseCase {
	return &GetWeeklyTrendUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute returns the weekly trend, serving from cache when possible.
func (uc *GetWeeklyTrendUseCase) Execute(ctx context.Context, input GetWeeklyTrendInput) (*GetWeeklyTrendOutput, error) {
	cacheKey := trendCacheKeyPrefix + input.UserID.String()

	var cached GetWeeklyTrendOutput
	if err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		slog.Warn("dashboard cache read failed", "key", cacheKey, "error", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardDataUnavailable,
			"failed to load transactions for weekly trend",
			fmt.Errorf("find transactions: %w", err),
		)
	}

	output := &GetWeeklyTrendOutput{
		Weeks: BuildWeeklyTrend(transactions, uc.clock.Now()),
	}

	if err := uc.cache.SetJSON(ctx, cacheKey, output); err != nil {
		slog.Warn("dashboard cache write failed", "key", cacheKey, "error", err)
	}

	return output, nil
}
