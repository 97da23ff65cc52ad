package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/controllers/healthz"
	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/storage"
	"github.com/finance-tracker/backend/internal/types"
	"github.com/finance-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup returns controllers on a fresh in-memory store seeded with the
// sample data, dated in the current month.
func setup(t *testing.T) (v1.Controller, healthz.Controller) {
	t.Helper()

	store := storage.NewMemory()
	l := ledger.New(store)
	l.Load(time.Now())

	return v1.Controller{Ledger: l}, healthz.Controller{Store: store}
}

func today() types.Date {
	year, month, day := time.Now().Date()
	return types.NewDate(year, month, day)
}

func TestOptionsTransactions(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodOptions, "/v1/transactions", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(co, hz, t, http.MethodOptions, "/v1/transactions/1", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func TestGetTransactions(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)

	assert.Len(t, response.Data, 10)
	assert.Equal(t, 10, response.Pagination.Total)
	assert.Equal(t, 10, response.Pagination.Limit, "the limit defaults to 10")
	assert.Equal(t, uint64(1), response.Data[0].ID, "transactions are most recent first")
}

func TestGetTransactionsPagination(t *testing.T) {
	co, hz := setup(t)

	tests := []struct {
		query string
		count int
		total int
	}{
		{"limit=5", 5, 10},
		{"limit=-1", 10, 10},
		{"offset=8", 2, 10},
		{"offset=15", 0, 10},
		{"offset=9&limit=5", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := test.Request(co, hz, t, http.MethodGet, "/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func TestGetTransactionsFilterPeriod(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/transactions?period=last_month", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)
	assert.Empty(t, response.Data, "the seed data is dated in the current month")

	r = test.Request(co, hz, t, http.MethodGet, "/v1/transactions?period=yesteryear", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

func TestGetTransactionsFilterDescription(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/transactions?description=*card*", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(t, &r, &response)

	require.Len(t, response.Data, 1)
	assert.Equal(t, "Metro card refill", response.Data[0].Description)
}

func TestCreateTransaction(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(12.34),
		Category:    "Food",
		Description: "Sandwich",
		Date:        today(),
		Type:        models.TypeExpense,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)

	assert.Equal(t, uint64(11), response.Data.ID)
	assert.Equal(t, "Sandwich", response.Data.Description)
}

func TestCreateTransactionInvalid(t *testing.T) {
	co, hz := setup(t)

	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"broken json", `{"amount":`},
		{"zero amount", v1.TransactionEditable{Category: "Food", Description: "x", Date: today(), Type: models.TypeExpense}},
		{"unknown category", v1.TransactionEditable{Amount: decimal.NewFromInt(1), Category: "Gambling", Description: "x", Date: today(), Type: models.TypeExpense}},
		{"unknown type", v1.TransactionEditable{Amount: decimal.NewFromInt(1), Category: "Food", Description: "x", Date: today(), Type: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := test.Request(co, hz, t, http.MethodPost, "/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodGet, "/v1/transactions/4", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "Freelance project payment", response.Data.Description)

	r = test.Request(co, hz, t, http.MethodGet, "/v1/transactions/9999", "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)

	r = test.Request(co, hz, t, http.MethodGet, "/v1/transactions/definitelyNotAnID", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

func TestUpdateTransaction(t *testing.T) {
	co, hz := setup(t)

	update := v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(99.99),
		Category:    "Other",
		Description: "Updated",
		Date:        today(),
		Type:        models.TypeExpense,
	}

	r := test.Request(co, hz, t, http.MethodPatch, "/v1/transactions/3", update)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, uint64(3), response.Data.ID)
	assert.Equal(t, "Updated", response.Data.Description)

	r = test.Request(co, hz, t, http.MethodPatch, "/v1/transactions/9999", update)
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)

	r = test.Request(co, hz, t, http.MethodPatch, "/v1/transactions/3", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

func TestDeleteTransaction(t *testing.T) {
	co, hz := setup(t)

	r := test.Request(co, hz, t, http.MethodDelete, "/v1/transactions/1", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)

	r = test.Request(co, hz, t, http.MethodGet, "/v1/transactions/1", "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)

	// Deleting a missing transaction is a no-op
	r = test.Request(co, hz, t, http.MethodDelete, "/v1/transactions/1", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
}

func TestTransactionStoreUnavailable(t *testing.T) {
	store, err := storage.Connect(test.TmpFile(t))
	require.Nil(t, err)

	l := ledger.New(store)
	l.Load(time.Now())

	co := v1.Controller{Ledger: l}
	hz := healthz.Controller{Store: store}

	require.Nil(t, store.Close())

	// Mutations stay available, the state is kept in memory
	r := test.Request(co, hz, t, http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(12.34),
		Category:    "Food",
		Description: fmt.Sprintf("Created at %s", time.Now()),
		Date:        today(),
		Type:        models.TypeExpense,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	r = test.Request(co, hz, t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
}
