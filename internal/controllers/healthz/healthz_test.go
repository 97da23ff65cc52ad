package healthz_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/finance-tracker/backend/internal/controllers/healthz"
	v1 "github.com/finance-tracker/backend/internal/controllers/v1"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/storage"
	"github.com/finance-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func setup(store storage.Store) (v1.Controller, healthz.Controller) {
	l := ledger.New(store)
	l.Load(time.Now())

	return v1.Controller{Ledger: l}, healthz.Controller{Store: store}
}

func TestOptionsHealthz(t *testing.T) {
	co, hz := setup(storage.NewMemory())

	r := test.Request(co, hz, t, http.MethodOptions, "/healthz", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
}

func TestGetHealthz(t *testing.T) {
	co, hz := setup(storage.NewMemory())

	r := test.Request(co, hz, t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
}

func TestGetHealthzUnavailable(t *testing.T) {
	store := storage.NewMemory()
	co, hz := setup(store)

	store.Err = errors.New("broken")

	r := test.Request(co, hz, t, http.MethodGet, "/healthz", "")
	test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
}
