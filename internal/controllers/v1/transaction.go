package v1

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// GetTransactions returns transactions filtered by the query parameters.
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrRequestBodyInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	period := filter.Period
	if period == "" {
		period = report.PeriodAll
	}

	if !period.Valid() {
		s := errPeriodInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	transactions := report.FilterByPeriod(co.Ledger.Transactions(), period, time.Now())

	if filter.Description != "" {
		matched := transactions[:0]
		for _, t := range transactions {
			if glob.Glob(filter.Description, t.Description) {
				matched = append(matched, t)
			}
		}
		transactions = matched
	}

	total := len(transactions)

	if filter.Offset >= uint(total) {
		transactions = transactions[:0]
	} else {
		transactions = transactions[filter.Offset:]
	}

	if filter.Limit >= 0 && filter.Limit < len(transactions) {
		transactions = transactions[:filter.Limit]
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: transactions,
		Pagination: Pagination{
			Count:  len(transactions),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetTransaction returns a single transaction by its ID.
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	transaction, err := co.Ledger.Transaction(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// CreateTransaction creates a new transaction.
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	transaction, err := co.Ledger.AddTransaction(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// UpdateTransaction replaces the editable fields of a transaction.
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	transaction, err := co.Ledger.EditTransaction(uri.ID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// DeleteTransaction deletes a transaction. Deleting a transaction that
// does not exist is a no-op and returns 204, too.
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	co.Ledger.DeleteTransaction(uri.ID)
	c.Status(http.StatusNoContent)
}
