package report

import (
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TrendMonths is the number of months shown in the expense trend.
const TrendMonths = 6

// MonthTotal is the expense sum for a single calendar month.
type MonthTotal struct {
	Month types.Month     `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTrend returns the expense sums for exactly months consecutive
// calendar months ending at the month of reference, oldest first. Months
// without expenses are included with a total of 0. Income is excluded.
func MonthlyTrend(transactions []models.Transaction, reference time.Time, months int) []MonthTotal {
	if months < 1 {
		return []MonthTotal{}
	}

	start := types.MonthOf(reference).AddDate(0, -(months - 1))

	trend := make([]MonthTotal, months)
	index := make(map[types.Month]int, months)
	for i := range trend {
		month := start.AddDate(0, i)
		trend[i] = MonthTotal{Month: month, Total: decimal.Zero}
		index[month] = i
	}

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		if i, ok := index[t.Date.Month()]; ok {
			trend[i].Total = trend[i].Total.Add(t.Amount)
		}
	}

	return trend
}
