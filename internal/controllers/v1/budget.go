package v1

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type BudgetResponse struct {
	Error *string        `json:"error"` // The error, if one occurred
	Data  models.Budgets `json:"data"`  // The budget limits per category
}

type BudgetProgressResponse struct {
	Error *string                   `json:"error"` // The error, if one occurred
	Data  []report.CategoryProgress `json:"data"`  // Utilization per category
}

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPut)
		r.GET("", co.GetBudgets)
		r.PUT("", co.UpdateBudgets)
	}

	{
		r.OPTIONS("/progress", httputil.OptionsGet)
		r.GET("/progress", co.GetBudgetProgress)
	}
}

// GetBudgets returns the configured budget limits.
func (co Controller) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetResponse{Data: co.Ledger.Budgets()})
}

// UpdateBudgets replaces the budget limits wholesale. Categories missing
// from the request body are set to 0, unknown categories are dropped.
func (co Controller) UpdateBudgets(c *gin.Context) {
	var budgets models.Budgets
	if err := httputil.BindData(c, &budgets); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	if err := co.Ledger.SetBudgets(budgets); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: co.Ledger.Budgets()})
}

// GetBudgetProgress returns the budget utilization per category for the
// period given with the "period" query parameter. The period defaults to
// the current month.
func (co Controller) GetBudgetProgress(c *gin.Context) {
	period := report.Period(c.Query("period"))
	if period == "" {
		period = report.PeriodCurrentMonth
	}

	if !period.Valid() {
		s := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetProgressResponse{Error: &s})
		return
	}

	transactions := report.FilterByPeriod(co.Ledger.Transactions(), period, time.Now())
	progress := report.BudgetProgress(co.Ledger.Budgets(), report.SpendByCategory(transactions))

	c.JSON(http.StatusOK, BudgetProgressResponse{Data: progress})
}
