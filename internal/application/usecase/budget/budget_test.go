// Package budget contains category budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.CategoryBudget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.CategoryBudget)}
}

func (r *fakeBudgetRepo) Upsert(ctx context.Context, budget *entity.CategoryBudget) error {
	// Replace any existing row for the same user, category and month.
	for id, existing := range r.budgets {
		if existing.UserID == budget.UserID &&
			existing.Category == budget.Category &&
			existing.MonthAnchor.Equal(budget.MonthAnchor) {
			delete(r.budgets, id)
		}
	}
	r.budgets[budget.ID] = budget
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
	if b, ok := r.budgets[id]; ok && b.UserID == userID {
		delete(r.budgets, id)
	}
	return nil
}

func (r *fakeBudgetRepo) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	b, ok := r.budgets[id]
	return ok && b.UserID == userID, nil
}

type fakeCache struct {
	invalidated []string
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return adapter.ErrCacheMiss
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}) error { return nil }

func (c *fakeCache) InvalidateUser(ctx context.Context, userID string) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestSetBudgetUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("creates budget anchored at current month", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeCache{}
		uc := NewSetBudgetUseCase(repo, cache, fixedClock{now})

		output, err := uc.Execute(ctx, SetBudgetInput{
			UserID:   userID,
			Category: "Comida",
			Amount:   decimal.NewFromInt(300000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if !output.Budget.MonthAnchor.Equal(want) {
			t.Errorf("expected month anchor %v, got %v", want, output.Budget.MonthAnchor)
		}
		if len(cache.invalidated) != 1 {
			t.Error("expected dashboard cache invalidation")
		}
	})

	t.Run("setting the same category twice replaces the amount", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewSetBudgetUseCase(repo, &fakeCache{}, fixedClock{now})

		if _, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, Category: "Comida", Amount: decimal.NewFromInt(300000)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, Category: "Comida", Amount: decimal.NewFromInt(450000)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		budgets, _ := repo.FindByUserAndMonth(ctx, userID, entity.MonthAnchorFor(now))
		if len(budgets) != 1 {
			t.Fatalf("expected 1 budget row, got %d", len(budgets))
		}
		if !budgets[0].Amount.Equal(decimal.NewFromInt(450000)) {
			t.Errorf("expected amount 450000, got %s", budgets[0].Amount)
		}
	})

	t.Run("rejects empty category", func(t *testing.T) {
		uc := NewSetBudgetUseCase(newFakeBudgetRepo(), &fakeCache{}, fixedClock{now})

		_, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, Category: "  ", Amount: decimal.NewFromInt(1000)})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeEmptyBudgetCategory {
			t.Fatalf("expected empty category error, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		uc := NewSetBudgetUseCase(newFakeBudgetRepo(), &fakeCache{}, fixedClock{now})

		_, err := uc.Execute(ctx, SetBudgetInput{UserID: userID, Category: "Comida", Amount: decimal.NewFromInt(-1)})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})
}

func TestListBudgetsUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("lists only current month budgets", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		current := entity.NewCategoryBudget(userID, "Comida", decimal.NewFromInt(300000), entity.MonthAnchorFor(now))
		previous := entity.NewCategoryBudget(userID, "Comida", decimal.NewFromInt(250000), entity.MonthAnchorFor(now.AddDate(0, -1, 0)))
		repo.budgets[current.ID] = current
		repo.budgets[previous.ID] = previous

		uc := NewListBudgetsUseCase(repo, fixedClock{now})
		output, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(output.Budgets))
		}
		if output.Budgets[0].ID != current.ID {
			t.Error("expected only the current month budget")
		}
	})
}

func TestDeleteBudgetUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("deletes owned budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		cache := &fakeCache{}
		budget := entity.NewCategoryBudget(userID, "Comida", decimal.NewFromInt(300000), entity.MonthAnchorFor(now))
		repo.budgets[budget.ID] = budget

		uc := NewDeleteBudgetUseCase(repo, cache)
		if err := uc.Execute(ctx, DeleteBudgetInput{UserID: userID, BudgetID: budget.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.budgets) != 0 {
			t.Error("expected budget to be deleted")
		}
		if len(cache.invalidated) != 1 {
			t.Error("expected dashboard cache invalidation")
		}
	})

	t.Run("rejects deletion of another user's budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		budget := entity.NewCategoryBudget(uuid.New(), "Comida", decimal.NewFromInt(300000), entity.MonthAnchorFor(now))
		repo.budgets[budget.ID] = budget

		uc := NewDeleteBudgetUseCase(repo, &fakeCache{})
		err := uc.Execute(ctx, DeleteBudgetInput{UserID: userID, BudgetID: budget.ID})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetNotFound {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
