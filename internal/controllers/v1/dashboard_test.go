package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDashboard(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodOptions, "/v1/dashboard", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
}

func TestGetDashboard(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)

	data := response.Data
	assert.Equal(t, report.PeriodCurrentMonth, data.Period, "the period defaults to the current month")

	// The seed has one income of 2500 and expenses summing to 646.50
	assert.True(t, data.Totals.Income.Equal(decimal.NewFromInt(2500)), "income is %s", data.Totals.Income)
	assert.True(t, data.Totals.Expenses.Equal(decimal.NewFromFloat(646.50)), "expenses are %s", data.Totals.Expenses)
	assert.True(t, data.Totals.Balance.Equal(decimal.NewFromFloat(1853.50)), "balance is %s", data.Totals.Balance)

	require.Len(t, data.Transactions, 10)
	assert.Equal(t, "$45.50", data.Transactions[0].DisplayAmount)
	assert.NotEmpty(t, data.Transactions[0].DisplayDate)

	require.Len(t, data.BudgetProgress, len(models.Categories))
	assert.True(t, data.SpendByCategory["Food"].Equal(decimal.NewFromFloat(61.25)))

	require.Len(t, data.Trend, report.TrendMonths)
	assert.True(t, data.Trend[report.TrendMonths-1].Total.Equal(decimal.NewFromFloat(646.50)), "the current month is the last trend entry")
	assert.True(t, data.Trend[0].Total.IsZero())
}

func TestGetDashboardEscapesDescriptions(t *testing.T) {
	co, hz := setup(t)

	_, err := co.Ledger.AddTransaction(models.Transaction{
		Amount:      decimal.NewFromInt(5),
		Category:    "Other",
		Description: `<script>alert("x")</script>`,
		Date:        today(),
		Type:        models.TypeExpense,
	})
	require.Nil(t, err)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)

	require.NotEmpty(t, response.Data.Transactions)
	assert.Equal(t, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;", response.Data.Transactions[0].Description)
}

func TestGetDashboardRecentLimit(t *testing.T) {
	co, hz := setup(t)

	for i := 0; i < 5; i++ {
		_, err := co.Ledger.AddTransaction(models.Transaction{
			Amount:      decimal.NewFromInt(1),
			Category:    "Other",
			Description: "Filler",
			Date:        today(),
			Type:        models.TypeExpense,
		})
		require.Nil(t, err)
	}

	r := test.Request(co, hz, t, http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)

	assert.Len(t, response.Data.Transactions, 10, "the dashboard shows at most 10 transactions")
	assert.Equal(t, "Filler", response.Data.Transactions[0].Description)

	// Totals still cover the full period, not only the shown transactions
	assert.True(t, response.Data.Totals.Expenses.Equal(decimal.NewFromFloat(651.50)), "expenses are %s", response.Data.Totals.Expenses)
}

func TestGetDashboardPeriod(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/dashboard?period=last_month", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(t, &r, &response)
	assert.Empty(t, response.Data.Transactions)
	assert.True(t, response.Data.Totals.Balance.IsZero())

	r = test.Request(co, hz, t, http.MethodGet, "/v1/dashboard?period=alltime", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}
