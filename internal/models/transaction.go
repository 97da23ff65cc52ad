// Package models implements the domain resources for the finance tracker.
package models

import (
	"strings"

	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionType is the effect a transaction has on the balance.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// CategoryIncome is the category used for all income transactions.
const CategoryIncome = "Income"

// Categories is the fixed, ordered set of expense categories.
var Categories = []string{
	"Food",
	"Transportation",
	"Shopping",
	"Bills",
	"Entertainment",
	"Healthcare",
	"Other",
}

// CategoryValid reports whether name is a configured expense category.
func CategoryValid(name string) bool {
	return slices.Contains(Categories, name)
}

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID          uint64          `json:"id"`          // Unique identifier, assigned at creation and immutable
	Amount      decimal.Decimal `json:"amount"`      // Amount in currency units, always greater than zero
	Category    string          `json:"category"`    // One of Categories for expenses, CategoryIncome for income
	Description string          `json:"description"` // Free-text description, escaped before rendering
	Date        types.Date      `json:"date"`        // Calendar day of the transaction
	Type        TransactionType `json:"type"`        // expense or income
}

// Validate checks all fields that must be set for a transaction to be
// stored. It returns the first violation it finds.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" || t.Category == "" || t.Date.IsZero() {
		return ErrMissingField
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	switch t.Type {
	case TypeExpense:
		if !CategoryValid(t.Category) {
			return ErrUnknownCategory
		}
	case TypeIncome:
		if t.Category != CategoryIncome {
			return ErrUnknownCategory
		}
	default:
		return ErrInvalidType
	}

	return nil
}
