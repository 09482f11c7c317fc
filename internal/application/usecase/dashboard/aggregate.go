// Package dashboard contains dashboard-related use cases and the
// aggregation engine that derives dashboard metrics from raw records.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/domain/entity"
)

// AggregateResult holds the derived totals for a user's transaction set.
type AggregateResult struct {
	TotalSpent         decimal.Decimal            `json:"total_spent"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TodayExpenses      decimal.Decimal            `json:"today_expenses"`
	WeekExpenses       decimal.Decimal            `json:"week_expenses"`
	MonthExpenses      decimal.Decimal            `json:"month_expenses"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
}

// Aggregate folds a list of transactions into the dashboard totals.
//
// Records with an unknown kind contribute to nothing. Records with a zero
// CreatedAt still count toward TotalSpent/TotalIncome and the category map
// but are excluded from every time-window total. Uncategorized expenses
// count toward TotalSpent but not ExpensesByCategory. One bad record must
// never blank the whole dashboard, so malformed records are skipped, not
// rejected.
//
// Pure fold: commutative and associative per bucket, no input mutation.
func Aggregate(transactions []*entity.Transaction, now time.Time) AggregateResult {
	result := AggregateResult{
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range transactions {
		if tx == nil || !tx.Kind.IsValid() {
			continue
		}

		if tx.Kind == entity.TransactionKindIncome {
			result.TotalIncome = result.TotalIncome.Add(tx.Amount)
			continue
		}

		result.TotalSpent = result.TotalSpent.Add(tx.Amount)

		if tx.Category != nil {
			result.ExpensesByCategory[*tx.Category] = result.ExpensesByCategory[*tx.Category].Add(tx.Amount)
		}

		if IsToday(tx.CreatedAt, now) {
			result.TodayExpenses = result.TodayExpenses.Add(tx.Amount)
		}
		if IsThisWeek(tx.CreatedAt, now) {
			result.WeekExpenses = result.WeekExpenses.Add(tx.Amount)
		}
		if IsThisMonth(tx.CreatedAt, now) {
			result.MonthExpenses = result.MonthExpenses.Add(tx.Amount)
		}
	}

	return result
}
