// Package dashboard contains dashboard-related use cases and the
// aggregation engine that derives dashboard metrics from raw records.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/domain/entity"
)

// BudgetRow is the reconciled budget-vs-actual line for one category.
type BudgetRow struct {
	Category    string          `json:"category"`
	Actual      decimal.Decimal `json:"actual"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Surplus     decimal.Decimal `json:"surplus"`
	PercentUsed float64         `json:"percent_used"`
}

// BudgetTotals holds portfolio-wide reconciliation totals.
type BudgetTotals struct {
	TotalBudgeted    decimal.Decimal `json:"total_budgeted"`
	TotalActual      decimal.Decimal `json:"total_actual"`
	TotalSurplus     decimal.Decimal `json:"total_surplus"`
	OverBudgetCount  int             `json:"over_budget_count"`
	UnderBudgetCount int             `json:"under_budget_count"`
	WithBudgetCount  int             `json:"with_budget_count"`
}

// ReconcileResult is the output of joining budgets against actual spend.
type ReconcileResult struct {
	Rows   []BudgetRow  `json:"rows"`
	Totals BudgetTotals `json:"totals"`
}

// Reconcile joins current-month category budgets against per-category
// actual spend. The row set is the union of both sides: a category with
// spend but no budget appears with Budgeted zero, and a budgeted category
// with no spend appears with Actual zero. Callers must pass budgets
// already scoped to the month the expense mapping was computed for; the
// reconciler cannot detect a mismatch.
//
// A category only counts as over or under budget when its budget is
// strictly positive. Rows are returned in no particular order; display
// sorting belongs to the caller.
func Reconcile(budgets []*entity.CategoryBudget, expensesByCategory map[string]decimal.Decimal) ReconcileResult {
	budgeted := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		if b == nil {
			continue
		}
		budgeted[b.Category] = b.Amount
	}

	categories := make(map[string]struct{}, len(budgeted)+len(expensesByCategory))
	for c := range budgeted {
		categories[c] = struct{}{}
	}
	for c := range expensesByCategory {
		categories[c] = struct{}{}
	}

	result := ReconcileResult{
		Rows: make([]BudgetRow, 0, len(categories)),
	}

	for category := range categories {
		actual := expensesByCategory[category]
		budget := budgeted[category]
		surplus := budget.Sub(actual)

		var percentUsed float64
		if budget.IsPositive() {
			pct := actual.Mul(decimal.NewFromInt(100)).Div(budget)
			percentUsed, _ = pct.Round(2).Float64()
		}

		result.Rows = append(result.Rows, BudgetRow{
			Category:    category,
			Actual:      actual,
			Budgeted:    budget,
			Surplus:     surplus,
			PercentUsed: percentUsed,
		})

		result.Totals.TotalBudgeted = result.Totals.TotalBudgeted.Add(budget)
		result.Totals.TotalActual = result.Totals.TotalActual.Add(actual)
		result.Totals.TotalSurplus = result.Totals.TotalSurplus.Add(surplus)

		if budget.IsPositive() {
			result.Totals.WithBudgetCount++
			if surplus.IsNegative() {
				result.Totals.OverBudgetCount++
			} else if surplus.IsPositive() {
				result.Totals.UnderBudgetCount++
			}
		}
	}

	return result
}
