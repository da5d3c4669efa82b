package handlers

import (
	"errors"
	"net/http"

	"fantapiazza-backend/internal/auth"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Field string `json:"field,omitempty" example:"artistIds"`
}

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}

// respondError maps service errors onto HTTP statuses. Unknown errors are logged
// and reported with the fallback message only.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// parseID reads a UUID path parameter and writes the 400 response when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// actorFrom builds the service caller from the authenticated request.
// The route group guarantees the claims are present.
func actorFrom(c *gin.Context) service.Actor {
	id, _ := auth.GetUserID(c)
	role, _ := auth.GetUserRole(c)
	return service.Actor{ID: id, Role: role}
}

// currentUserID returns the caller id or writes a 401
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok || id == uuid.Nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}
