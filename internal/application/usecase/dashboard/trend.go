// Package dashboard contains dashboard-related use cases and the
// aggregation engine that derives dashboard metrics from raw records.
package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/domain/entity"
)

// TrendWeeks is the number of trailing week buckets in the spending trend.
const TrendWeeks = 4

// CurrentWeekLabel is the label for the most recent trend bucket (Spanish).
const CurrentWeekLabel = "Esta semana"

// WeekBucket represents one bar of the 4-week spending trend.
type WeekBucket struct {
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
	DateRange string          `json:"date_range"`
}

// BuildWeeklyTrend buckets expense transactions into 4 trailing 7-day
// windows anchored at now and returns them oldest first. The result always
// has exactly TrendWeeks elements regardless of input size. Records with
// an unknown kind or a zero CreatedAt are skipped.
func BuildWeeklyTrend(transactions []*entity.Transaction, now time.Time) []WeekBucket {
	buckets := make([]WeekBucket, TrendWeeks)

	for i := 0; i < TrendWeeks; i++ {
		weeksAgo := TrendWeeks - 1 - i // index 0 is the oldest bucket

		total := decimal.Zero
		for _, tx := range transactions {
			if tx == nil || tx.Kind != entity.TransactionKindExpense {
				continue
			}
			if InWeekBucket(tx.CreatedAt, now, weeksAgo) {
				total = total.Add(tx.Amount)
			}
		}

		start := now.AddDate(0, 0, -7*(weeksAgo+1))
		end := now.AddDate(0, 0, -7*weeksAgo)

		buckets[i] = WeekBucket{
			Label:     weekLabel(weeksAgo),
			Amount:    total,
			DateRange: fmt.Sprintf("%s - %s", start.Format("02/01"), end.Format("02/01")),
		}
	}

	return buckets
}

func weekLabel(weeksAgo int) string {
	switch weeksAgo {
	case 0:
		return CurrentWeekLabel
	case 1:
		return "Hace 1 semana"
	default:
		return fmt.Sprintf("Hace %d semanas", weeksAgo)
	}
}
