package handlers_test

import (
	"fantapiazza-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asCaller stands in for the auth middleware
func asCaller(id uuid.UUID, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("email", "caller@example.com")
		c.Set("role", role)
		c.Next()
	}
}
