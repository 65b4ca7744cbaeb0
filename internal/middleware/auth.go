package middleware

import (
	"errors"
	"strings"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/devranjit/salontraining-server-sub001/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuth JWT authentication middleware
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid token", err)
			}
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userName", claims.Name)
		c.Set("userEmail", claims.Email)
		c.Set("level", claims.Level)

		c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) uint64 {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// GetUserName extracts user name from context
func GetUserName(c *gin.Context) string {
	if v, exists := c.Get("userName"); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *gin.Context) string {
	if v, exists := c.Get("userEmail"); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserLevel extracts user level from context
func GetUserLevel(c *gin.Context) int {
	if v, exists := c.Get("level"); exists {
		if lvl, ok := v.(int); ok {
			return lvl
		}
	}
	return 0
}
