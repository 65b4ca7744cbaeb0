package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/gin-gonic/gin"
)

// MaintenanceKey guards maintenance triggers (e.g. the recycle bin
// sweep) with a shared secret so external schedulers can call them
// without a user session. Checks the X-Maintenance-Key header or the
// maintenance_key query parameter.
func MaintenanceKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			common.ErrorResponse(c, http.StatusServiceUnavailable, "Maintenance endpoint not configured", nil)
			c.Abort()
			return
		}

		key := c.GetHeader("X-Maintenance-Key")
		if key == "" {
			key = c.Query("maintenance_key")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid maintenance key", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
