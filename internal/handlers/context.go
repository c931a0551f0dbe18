package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/middleware"
)

// currentUserID reads the id the auth middleware stored. Aborts with
// 401 if it is missing or not a valid object id; behind RequireAuth
// that only happens on a misconfigured route.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token. Unauthorized access!"})
		return primitive.NilObjectID, false
	}
	return id, true
}
