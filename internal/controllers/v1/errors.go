package v1

import (
	"errors"
	"net/http"

	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/storage"
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, storage.ErrUnavailable) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrTransactionNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errPeriodInvalid = errors.New("the specified period is invalid")
