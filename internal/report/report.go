// Package report implements the derived-view computations of the finance
// tracker. All functions are pure: they read a snapshot of the state and
// never mutate it.
package report

import (
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Period is a time-window selector for the transaction sequence.
type Period string

const (
	PeriodAll          Period = "all"
	PeriodCurrentMonth Period = "current_month"
	PeriodLastMonth    Period = "last_month"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	return slices.Contains([]Period{PeriodAll, PeriodCurrentMonth, PeriodLastMonth}, p)
}

// FilterByPeriod returns the transactions falling into the period
// relative to reference. The input ordering is preserved, the sequence
// is not re-sorted.
func FilterByPeriod(transactions []models.Transaction, period Period, reference time.Time) []models.Transaction {
	if period == PeriodAll {
		return transactions
	}

	month := types.MonthOf(reference)
	if period == PeriodLastMonth {
		month = month.AddDate(0, -1)
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date.Month().Equal(month) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// Totals are the summed amounts for a transaction sequence.
type Totals struct {
	Income   decimal.Decimal `json:"totalIncome"`   // Sum of all income amounts
	Expenses decimal.Decimal `json:"totalExpenses"` // Sum of all expense amounts
	Balance  decimal.Decimal `json:"balance"`       // Income minus expenses
}

// ComputeTotals sums the transaction amounts by type. Transactions with
// an unrecognized type count as neither income nor expense.
func ComputeTotals(transactions []models.Transaction) Totals {
	totals := Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Type {
		case models.TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case models.TypeExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		default:
			log.Debug().Uint64("id", t.ID).Str("type", string(t.Type)).Msg("skipping transaction with unrecognized type")
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals
}

// SpendByCategory sums the expense amounts per category. Income entries
// are excluded. Categories without expenses are absent from the result,
// callers must default to zero on lookup.
func SpendByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		spend[t.Category] = spend[t.Category].Add(t.Amount)
	}

	return spend
}
