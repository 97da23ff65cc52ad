// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/finance-tracker/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Store storage.Store
}

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

// Options returns the allowed HTTP verbs.
func (co Controller) Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// Get returns 204 when the backing store is reachable and 500 when it
// is not.
func (co Controller) Get(c *gin.Context) {
	if err := co.Store.Ping(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
