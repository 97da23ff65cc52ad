package models

import (
	"github.com/shopspring/decimal"
)

// Budgets maps expense category names to their spending limit.
//
// A transaction may reference a category that is absent from the map,
// which is treated as a limit of 0.
type Budgets map[string]decimal.Decimal

// Validate checks that no budget value is negative.
func (b Budgets) Validate() error {
	for _, limit := range b {
		if limit.IsNegative() {
			return ErrInvalidBudget
		}
	}

	return nil
}

// Normalize returns a copy of the map with a value for every configured
// category, defaulting missing categories to 0. Unknown keys are dropped.
func (b Budgets) Normalize() Budgets {
	normalized := make(Budgets, len(Categories))
	for _, category := range Categories {
		limit, ok := b[category]
		if !ok {
			limit = decimal.Zero
		}

		normalized[category] = limit
	}

	return normalized
}

// DefaultBudgets returns the budget limits used when nothing is persisted.
func DefaultBudgets() Budgets {
	return Budgets{
		"Food":           decimal.NewFromInt(500),
		"Transportation": decimal.NewFromInt(200),
		"Shopping":       decimal.NewFromInt(300),
		"Bills":          decimal.NewFromInt(400),
		"Entertainment":  decimal.NewFromInt(150),
		"Healthcare":     decimal.NewFromInt(250),
		"Other":          decimal.NewFromInt(100),
	}
}
