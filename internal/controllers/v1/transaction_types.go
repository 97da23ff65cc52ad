package v1

import (
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/report"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents the fields of a transaction that
// clients can set, both for creation and for updates.
type TransactionEditable struct {
	Amount      decimal.Decimal        `json:"amount" example:"45.50"`
	Category    string                 `json:"category" example:"Food"`
	Description string                 `json:"description" example:"Grocery shopping"`
	Date        types.Date             `json:"date" example:"2026-08-10"`
	Type        models.TransactionType `json:"type" example:"expense"`
}

// model returns the models.Transaction for the Editable.
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
		Type:        editable.Type,
	}
}

type TransactionResponse struct {
	Error *string            `json:"error"` // The error, if one occurred
	Data  models.Transaction `json:"data"`  // The transaction
}

type TransactionListResponse struct {
	Error      *string              `json:"error"`      // The error, if one occurred
	Data       []models.Transaction `json:"data"`       // List of transactions
	Pagination Pagination           `json:"pagination"` // Pagination information
}

// TransactionQueryFilter contains the fields transactions can be
// filtered with.
type TransactionQueryFilter struct {
	Period      report.Period `form:"period"`           // The period to limit results to. Defaults to "all".
	Description string        `form:"description"`      // Glob pattern the description has to match
	Offset      uint          `form:"offset"`           // The offset of the first transaction returned. Defaults to 0.
	Limit       int           `form:"limit,default=10"` // Maximum number of transactions returned. Defaults to 10. Set to -1 to return all.
}
