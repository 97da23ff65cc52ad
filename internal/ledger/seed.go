package ledger

import (
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// defaultMonthlyIncome is used when no monthly income is persisted.
func defaultMonthlyIncome() decimal.Decimal {
	return decimal.NewFromInt(3000)
}

// seedTransactions returns the sample records used on first start, dated
// on the first ten days of the month of now, most recent first.
func seedTransactions(now time.Time) []models.Transaction {
	year, month, _ := now.Date()
	day := func(d int) types.Date {
		return types.NewDate(year, month, d)
	}

	return []models.Transaction{
		{ID: 1, Amount: decimal.New(4550, -2), Category: "Food", Description: "Lunch at downtown cafe", Date: day(10), Type: models.TypeExpense},
		{ID: 2, Amount: decimal.New(2500, -2), Category: "Transportation", Description: "Metro card refill", Date: day(9), Type: models.TypeExpense},
		{ID: 3, Amount: decimal.New(12000, -2), Category: "Shopping", Description: "Groceries - weekly shopping", Date: day(8), Type: models.TypeExpense},
		{ID: 4, Amount: decimal.New(250000, -2), Category: models.CategoryIncome, Description: "Freelance project payment", Date: day(7), Type: models.TypeIncome},
		{ID: 5, Amount: decimal.New(8500, -2), Category: "Bills", Description: "Internet bill", Date: day(6), Type: models.TypeExpense},
		{ID: 6, Amount: decimal.New(3000, -2), Category: "Entertainment", Description: "Movie tickets", Date: day(5), Type: models.TypeExpense},
		{ID: 7, Amount: decimal.New(1575, -2), Category: "Food", Description: "Coffee and pastry", Date: day(4), Type: models.TypeExpense},
		{ID: 8, Amount: decimal.New(20000, -2), Category: "Healthcare", Description: "Doctor visit", Date: day(3), Type: models.TypeExpense},
		{ID: 9, Amount: decimal.New(5000, -2), Category: "Transportation", Description: "Taxi ride", Date: day(2), Type: models.TypeExpense},
		{ID: 10, Amount: decimal.New(7525, -2), Category: "Shopping", Description: "Clothing items", Date: day(1), Type: models.TypeExpense},
	}
}
