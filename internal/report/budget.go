package report

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Tier classifies the utilization of a budget.
type Tier string

const (
	TierNormal  Tier = "normal"  // Up to 80% spent
	TierWarning Tier = "warning" // More than 80% and up to 100% spent
	TierDanger  Tier = "danger"  // More than 100% spent
)

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
	dangerThreshold  = decimal.NewFromInt(100)
)

// CategoryProgress is the budget utilization of a single category.
type CategoryProgress struct {
	Category   string          `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`  // Budget minus spent, negative when over budget
	Percentage decimal.Decimal `json:"percentage"` // Uncapped, clamping for progress bars is up to the renderer
	Tier       Tier            `json:"tier"`
}

// BudgetProgress computes the utilization for every category in the
// budget map, in the fixed category order. A budget of 0 yields a
// percentage of 0 and the normal tier regardless of spend.
func BudgetProgress(budgets models.Budgets, spend map[string]decimal.Decimal) []CategoryProgress {
	progress := make([]CategoryProgress, 0, len(budgets))

	for _, category := range models.Categories {
		budget, ok := budgets[category]
		if !ok {
			continue
		}

		spent, ok := spend[category]
		if !ok {
			spent = decimal.Zero
		}

		percentage := decimal.Zero
		if budget.IsPositive() {
			percentage = spent.Div(budget).Mul(hundred)
		}

		tier := TierNormal
		if percentage.GreaterThan(dangerThreshold) {
			tier = TierDanger
		} else if percentage.GreaterThan(warningThreshold) {
			tier = TierWarning
		}

		progress = append(progress, CategoryProgress{
			Category:   category,
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget.Sub(spent),
			Percentage: percentage,
			Tier:       tier,
		})
	}

	return progress
}
