package middleware

import (
	"net/http"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/gin-gonic/gin"
)

// RequireAdmin checks that the authenticated user has admin level (>= 10)
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserLevel(c) < 10 {
			common.ErrorResponse(c, http.StatusForbidden, "Admin privileges required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
