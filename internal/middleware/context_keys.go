package middleware

import (
	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// userRoleKey is the key used to store the authenticated user's role in the
// request context.
const userRoleKey = contextKey("userRole")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetActorFromContext builds the acting user from the authenticated request
// context. Only the ID and role are populated; write paths need nothing
// more.
func GetActorFromContext(c *gin.Context) (domain.User, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.User{}, false
	}
	roleVal := c.Request.Context().Value(userRoleKey)
	role, ok := roleVal.(domain.UserRole)
	if !ok {
		return domain.User{}, false
	}
	return domain.User{UserID: userID, Role: role}, true
}
