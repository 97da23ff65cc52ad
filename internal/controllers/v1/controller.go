// Package v1 implements the v1 API of the finance tracker.
package v1

import (
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Controller holds the state store the handlers operate on.
//
// The ledger is passed explicitly, there is no package-level state.
type Controller struct {
	Ledger *ledger.Ledger
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterIncomeRoutes(r.Group("/income"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
	co.RegisterExportRoutes(r.Group("/export"))
}
