package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nerobarber/booking-api/internal/models"
)

// RoleResolver is the fail-open role lookup: failures resolve to the
// client experience, so barber routes stay closed when in doubt.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID uuid.UUID) string
}

// RequireBarber gates shop-operator routes. The role is always resolved
// from the profile row, never trusted from the token, so demoting a
// profile takes effect immediately.
func RequireBarber(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)

		if resolver.ResolveRole(c.Request.Context(), userID) != models.RoleBarber {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error_code": "barber_role_required"})
			return
		}

		c.Next()
	}
}
