package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the export with the
// RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetExport)
}

// GetExport returns the full state as a JSON download. The response is
// marked as an attachment with a date-stamped file name.
func (co Controller) GetExport(c *gin.Context) {
	now := time.Now()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("finance-tracker-export-%s.json", now.Format("2006-01-02"))))
	c.JSON(http.StatusOK, co.Ledger.Export(now))
}
