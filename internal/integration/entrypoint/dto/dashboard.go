// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"sort"

	"github.com/plata-app/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
// All amounts are decimal strings in whole Colombian pesos.
type SummaryResponse struct {
	TotalSpent         string            `json:"total_spent"`
	TotalIncome        string            `json:"total_income"`
	Balance            string            `json:"balance"`
	TodayExpenses      string            `json:"today_expenses"`
	WeekExpenses       string            `json:"week_expenses"`
	MonthExpenses      string            `json:"month_expenses"`
	ExpensesByCategory []CategoryExpense `json:"expenses_by_category"`
}

// CategoryExpense represents one category's cumulative expense total.
type CategoryExpense struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// WeekBucketResponse represents one week of the trailing expense trend.
type WeekBucketResponse struct {
	Label     string `json:"label"`
	Amount    string `json:"amount"`
	DateRange string `json:"date_range"`
}

// WeeklyTrendResponse represents the trailing 4-week trend in API responses.
type WeeklyTrendResponse struct {
	Weeks []WeekBucketResponse `json:"weeks"`
}

// BudgetRowResponse represents one reconciled category row.
type BudgetRowResponse struct {
	Category    string  `json:"category"`
	Actual      string  `json:"actual"`
	Budgeted    string  `json:"budgeted"`
	Surplus     string  `json:"surplus"`
	PercentUsed float64 `json:"percent_used"`
}

// BudgetTotalsResponse represents the aggregate reconciliation totals.
type BudgetTotalsResponse struct {
	TotalBudgeted    string `json:"total_budgeted"`
	TotalActual      string `json:"total_actual"`
	TotalSurplus     string `json:"total_surplus"`
	OverBudgetCount  int    `json:"over_budget_count"`
	UnderBudgetCount int    `json:"under_budget_count"`
	WithBudgetCount  int    `json:"with_budget_count"`
}

// BudgetOverviewResponse represents the budget view for the current month.
type BudgetOverviewResponse struct {
	Month  string               `json:"month"`
	Rows   []BudgetRowResponse  `json:"rows"`
	Totals BudgetTotalsResponse `json:"totals"`
}

// ToSummaryResponse converts a summary output to a response DTO. Category
// totals are emitted as a list sorted by amount descending so clients can
// render them without re-sorting.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	byCategory := make([]CategoryExpense, 0, len(output.ExpensesByCategory))
	for category, amount := range output.ExpensesByCategory {
		byCategory = append(byCategory, CategoryExpense{
			Category: category,
			Amount:   amount.String(),
		})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		a := output.ExpensesByCategory[byCategory[i].Category]
		b := output.ExpensesByCategory[byCategory[j].Category]
		if a.Equal(b) {
			return byCategory[i].Category < byCategory[j].Category
		}
		return a.GreaterThan(b)
	})

	return SummaryResponse{
		TotalSpent:         output.TotalSpent.String(),
		TotalIncome:        output.TotalIncome.String(),
		Balance:            output.Balance.String(),
		TodayExpenses:      output.TodayExpenses.String(),
		WeekExpenses:       output.WeekExpenses.String(),
		MonthExpenses:      output.MonthExpenses.String(),
		ExpensesByCategory: byCategory,
	}
}

// ToWeeklyTrendResponse converts a trend output to a response DTO.
func ToWeeklyTrendResponse(output *dashboard.GetWeeklyTrendOutput) WeeklyTrendResponse {
	weeks := make([]WeekBucketResponse, 0, len(output.Weeks))
	for _, bucket := range output.Weeks {
		weeks = append(weeks, WeekBucketResponse{
			Label:     bucket.Label,
			Amount:    bucket.Amount.String(),
			DateRange: bucket.DateRange,
		})
	}
	return WeeklyTrendResponse{Weeks: weeks}
}

// ToBudgetOverviewResponse converts a budget overview output to a response DTO.
func ToBudgetOverviewResponse(output *dashboard.GetBudgetOverviewOutput) BudgetOverviewResponse {
	rows := make([]BudgetRowResponse, 0, len(output.Rows))
	for _, row := range output.Rows {
		rows = append(rows, BudgetRowResponse{
			Category:    row.Category,
			Actual:      row.Actual.String(),
			Budgeted:    row.Budgeted.String(),
			Surplus:     row.Surplus.String(),
			PercentUsed: row.PercentUsed,
		})
	}

	return BudgetOverviewResponse{
		Month: output.Month.Format("2006-01"),
		Rows:  rows,
		Totals: BudgetTotalsResponse{
			TotalBudgeted:    output.Totals.TotalBudgeted.String(),
			TotalActual:      output.Totals.TotalActual.String(),
			TotalSurplus:     output.Totals.TotalSurplus.String(),
			OverBudgetCount:  output.Totals.OverBudgetCount,
			UnderBudgetCount: output.Totals.UnderBudgetCount,
			WithBudgetCount:  output.Totals.WithBudgetCount,
		},
	}
}
