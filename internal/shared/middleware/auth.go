package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"social-analytics-backend/internal/shared/response"
	"social-analytics-backend/pkg/jwt"
)

// Auth validates the Bearer token and stores the claims on the context.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "AUTH_001", "Authorization header is required")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.Unauthorized(c, "AUTH_001", "Authorization header must be a Bearer token")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			response.Unauthorized(c, "AUTH_002", "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.Type != "access" {
			response.Unauthorized(c, "AUTH_002", "Access token required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
