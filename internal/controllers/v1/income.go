package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"3000"`
}

type IncomeResponse struct {
	Error *string        `json:"error"` // The error, if one occurred
	Data  IncomeEditable `json:"data"`  // The monthly income
}

// RegisterIncomeRoutes registers the routes for the monthly income with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetIncome)
	r.PATCH("", co.UpdateIncome)
}

// GetIncome returns the configured monthly income.
func (co Controller) GetIncome(c *gin.Context) {
	c.JSON(http.StatusOK, IncomeResponse{Data: IncomeEditable{MonthlyIncome: co.Ledger.MonthlyIncome()}})
}

// UpdateIncome sets the monthly income.
func (co Controller) UpdateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{Error: &s})
		return
	}

	if err := co.Ledger.SetMonthlyIncome(editable.MonthlyIncome); err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: IncomeEditable{MonthlyIncome: co.Ledger.MonthlyIncome()}})
}
