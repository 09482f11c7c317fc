// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
)

// In-memory fakes for the adapter interfaces used by the dashboard use cases.

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	findErr      error
	findCalls    int
}

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return &adapter.TransactionListResult{}, nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeTransactionRepo) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	return false, nil
}

type fakeBudgetRepo struct {
	budgets []*entity.CategoryBudget
}

func (r *fakeBudgetRepo) Upsert(ctx context.Context, budget *entity.CategoryBudget) error {
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *fakeBudgetRepo) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthAnchor time.Time) ([]*entity.CategoryBudget, error) {
	var out []*entity.CategoryBudget
	for _, b := range r.budgets {
		if b.UserID == userID && b.MonthAnchor.Equal(monthAnchor) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return nil
}

func (r *fakeBudgetRepo) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	return false, nil
}

type fakeCache struct {
	values  map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.values[key]
	if !ok {
		return adapter.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	c.setKeys = append(c.setKeys, key)
	return nil
}

func (c *fakeCache) InvalidateUser(ctx context.Context, userID string) error {
	for key := range c.values {
		if strings.HasSuffix(key, userID) {
			delete(c.values, key)
		}
	}
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestGetSummaryUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	newTx := func(amount int64, category string, kind entity.TransactionKind, createdAt time.Time) *entity.Transaction {
		return &entity.Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			Amount:    decimal.NewFromInt(amount),
			Category:  &category,
			Kind:      kind,
			CreatedAt: createdAt,
		}
	}

	t.Run("computes summary from transactions", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			newTx(40000, "Auto", entity.TransactionKindExpense, now),
			newTx(1000000, "Salario", entity.TransactionKindIncome, now.AddDate(0, 0, -2)),
		}}
		cache := newFakeCache()
		uc := NewGetSummaryUseCase(repo, cache, fixedClock{now})

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.TotalSpent.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected total spent 40000, got %s", output.TotalSpent)
		}
		if !output.Balance.Equal(decimal.NewFromInt(960000)) {
			t.Errorf("expected balance 960000, got %s", output.Balance)
		}
		if !output.TodayExpenses.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected today expenses 40000, got %s", output.TodayExpenses)
		}
	})

	t.Run("serves second call from cache", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			newTx(40000, "Auto", entity.TransactionKindExpense, now),
		}}
		cache := newFakeCache()
		uc := NewGetSummaryUseCase(repo, cache, fixedClock{now})

		first, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.findCalls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.findCalls)
		}
		if !first.TotalSpent.Equal(second.TotalSpent) {
			t.Error("expected cached result to match computed result")
		}
	})

	t.Run("cache failures fall back to recompute", func(t *testing.T) {
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			newTx(40000, "Auto", entity.TransactionKindExpense, now),
		}}
		cache := newFakeCache()
		cache.getErr = errors.New("redis down")
		cache.setErr = errors.New("redis down")
		uc := NewGetSummaryUseCase(repo, cache, fixedClock{now})

		output, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected cache failure to be tolerated, got %v", err)
		}
		if !output.TotalSpent.Equal(decimal.NewFromInt(40000)) {
			t.Errorf("expected total spent 40000, got %s", output.TotalSpent)
		}
	})

	t.Run("repository failure surfaces dashboard error", func(t *testing.T) {
		repo := &fakeTransactionRepo{findErr: errors.New("db down")}
		uc := NewGetSummaryUseCase(repo, newFakeCache(), fixedClock{now})

		_, err := uc.Execute(ctx, GetSummaryInput{UserID: userID})
		if err == nil {
			t.Fatal("expected error when repository fails")
		}
	})
}

func TestGetWeeklyTrendUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 28, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("returns four buckets with per-week spend", func(t *testing.T) {
		category := "Comida"
		repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(10000), Category: &category, Kind: entity.TransactionKindExpense, CreatedAt: now.AddDate(0, 0, -1)},
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(20000), Category: &category, Kind: entity.TransactionKindExpense, CreatedAt: now.AddDate(0, 0, -10)},
		}}
		uc := NewGetWeeklyTrendUseCase(repo, newFakeCache(), fixedClock{now})

		output, err := uc.Execute(ctx, GetWeeklyTrendInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Weeks) != TrendWeeks {
			t.Fatalf("expected %d buckets, got %d", TrendWeeks, len(output.Weeks))
		}
		if !output.Weeks[3].Amount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected current week 10000, got %s", output.Weeks[3].Amount)
		}
		if !output.Weeks[2].Amount.Equal(decimal.NewFromInt(20000)) {
			t.Errorf("expected previous week 20000, got %s", output.Weeks[2].Amount)
		}
	})

	t.Run("empty history still returns four buckets", func(t *testing.T) {
		uc := NewGetWeeklyTrendUseCase(&fakeTransactionRepo{}, newFakeCache(), fixedClock{now})

		output, err := uc.Execute(ctx, GetWeeklyTrendInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Weeks) != TrendWeeks {
			t.Fatalf("expected %d buckets, got %d", TrendWeeks, len(output.Weeks))
		}
	})
}

func TestGetBudgetOverviewUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	monthAnchor := entity.MonthAnchorFor(now)

	category := "Comida"
	otherCategory := "Transporte"

	t.Run("joins current month spend against budgets sorted by actual", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(350000), Category: &category, Kind: entity.TransactionKindExpense, CreatedAt: now.AddDate(0, 0, -2)},
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(50000), Category: &otherCategory, Kind: entity.TransactionKindExpense, CreatedAt: now.AddDate(0, 0, -1)},
			// Previous month: must not contribute to the overview.
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(999000), Category: &category, Kind: entity.TransactionKindExpense, CreatedAt: now.AddDate(0, -1, 0)},
		}}
		budgetRepo := &fakeBudgetRepo{budgets: []*entity.CategoryBudget{
			{ID: uuid.New(), UserID: userID, Category: category, Amount: decimal.NewFromInt(300000), MonthAnchor: monthAnchor},
		}}
		uc := NewGetBudgetOverviewUseCase(txRepo, budgetRepo, newFakeCache(), fixedClock{now})

		output, err := uc.Execute(ctx, GetBudgetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(output.Rows))
		}
		if output.Rows[0].Category != category {
			t.Errorf("expected highest spend first, got %q", output.Rows[0].Category)
		}
		if !output.Rows[0].Actual.Equal(decimal.NewFromInt(350000)) {
			t.Errorf("expected actual 350000, got %s", output.Rows[0].Actual)
		}
		if !output.Rows[0].Surplus.Equal(decimal.NewFromInt(-50000)) {
			t.Errorf("expected surplus -50000, got %s", output.Rows[0].Surplus)
		}
		if output.Totals.OverBudgetCount != 1 {
			t.Errorf("expected over budget count 1, got %d", output.Totals.OverBudgetCount)
		}
		if !output.Month.Equal(monthAnchor) {
			t.Errorf("expected month %v, got %v", monthAnchor, output.Month)
		}
	})

	t.Run("no budgets and no spend yields empty overview", func(t *testing.T) {
		uc := NewGetBudgetOverviewUseCase(&fakeTransactionRepo{}, &fakeBudgetRepo{}, newFakeCache(), fixedClock{now})

		output, err := uc.Execute(ctx, GetBudgetOverviewInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Rows) != 0 {
			t.Errorf("expected no rows, got %d", len(output.Rows))
		}
		if !output.Totals.TotalBudgeted.IsZero() || !output.Totals.TotalActual.IsZero() {
			t.Error("expected zero totals")
		}
	})
}
