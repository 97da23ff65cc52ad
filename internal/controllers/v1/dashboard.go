package v1

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/format"
	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// recentTransactions is the number of transactions shown on the dashboard.
const recentTransactions = 10

// DisplayTransaction is a transaction prepared for direct rendering. The
// description is HTML-escaped, the display fields are pre-formatted.
type DisplayTransaction struct {
	ID            uint64                 `json:"id"`
	Amount        decimal.Decimal        `json:"amount"`
	DisplayAmount string                 `json:"displayAmount" example:"$45.50"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"` // HTML-escaped
	Date          types.Date             `json:"date"`
	DisplayDate   string                 `json:"displayDate" example:"Aug 10, 2026"`
	Type          models.TransactionType `json:"type"`
}

// Dashboard is the full snapshot a dashboard renderer needs for one
// period, computed in a single request.
type Dashboard struct {
	Period          report.Period              `json:"period"`
	Totals          report.Totals              `json:"totals"`
	Transactions    []DisplayTransaction       `json:"transactions"` // The most recent transactions of the period
	BudgetProgress  []report.CategoryProgress  `json:"budgetProgress"`
	SpendByCategory map[string]decimal.Decimal `json:"spendByCategory"`
	Trend           []report.MonthTotal        `json:"trend"` // Expense totals for the last months, oldest first
}

type DashboardResponse struct {
	Error *string   `json:"error"` // The error, if one occurred
	Data  Dashboard `json:"data"`  // The dashboard snapshot
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetDashboard)
}

// GetDashboard returns the dashboard snapshot for the period given with
// the "period" query parameter. The period defaults to the current month.
func (co Controller) GetDashboard(c *gin.Context) {
	period := report.Period(c.Query("period"))
	if period == "" {
		period = report.PeriodCurrentMonth
	}

	if !period.Valid() {
		s := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &s})
		return
	}

	now := time.Now()
	all := co.Ledger.Transactions()
	filtered := report.FilterByPeriod(all, period, now)

	recent := filtered
	if len(recent) > recentTransactions {
		recent = recent[:recentTransactions]
	}

	display := make([]DisplayTransaction, 0, len(recent))
	for _, t := range recent {
		display = append(display, DisplayTransaction{
			ID:            t.ID,
			Amount:        t.Amount,
			DisplayAmount: format.Currency(t.Amount),
			Category:      t.Category,
			Description:   format.EscapeHTML(t.Description),
			Date:          t.Date,
			DisplayDate:   format.Date(t.Date),
			Type:          t.Type,
		})
	}

	spend := report.SpendByCategory(filtered)

	c.JSON(http.StatusOK, DashboardResponse{Data: Dashboard{
		Period:          period,
		Totals:          report.ComputeTotals(filtered),
		Transactions:    display,
		BudgetProgress:  report.BudgetProgress(co.Ledger.Budgets(), spend),
		SpendByCategory: spend,
		Trend:           report.MonthlyTrend(all, now, report.TrendMonths),
	}})
}
