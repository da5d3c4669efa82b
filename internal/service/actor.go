package service

import (
	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a service operation
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

// IsAdmin reports whether the actor holds the ADMIN role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func requireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminRequired
	}
	return nil
}

func (a Actor) idPtr() *uuid.UUID {
	if a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}
