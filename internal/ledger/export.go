package ledger

import (
	"time"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Export is the one-way export document. There is no import path, the
// document is meant for human consumption and external tooling.
type Export struct {
	Transactions  []models.Transaction `json:"transactions"`
	Budgets       models.Budgets       `json:"budgets"`
	MonthlyIncome decimal.Decimal      `json:"monthlyIncome"`
	ExportDate    time.Time            `json:"exportDate"`
}

// Export returns a snapshot of the full state with now as the export
// timestamp.
func (l *Ledger) Export(now time.Time) Export {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := make([]models.Transaction, len(l.transactions))
	copy(transactions, l.transactions)

	budgets := make(models.Budgets, len(l.budgets))
	for category, limit := range l.budgets {
		budgets[category] = limit
	}

	return Export{
		Transactions:  transactions,
		Budgets:       budgets,
		MonthlyIncome: l.monthlyIncome,
		ExportDate:    now,
	}
}
