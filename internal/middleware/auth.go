package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/auth"
)

// ContextUserIDKey holds the authenticated user's id (hex string) in
// the gin context.
const ContextUserIDKey = "userID"

// RequireAuth resolves the caller's identity from the Authorization
// header before any owned-resource handler runs.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token. Unauthorized access!"})
			return
		}

		userID, err := auth.VerifyToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
