// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller identifies the authenticated principal on whose behalf an operation
// runs. The authentication middleware resolves it from the access token and
// hands it to the usecase explicitly, so business rules never reach into
// request state.
type Caller struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// IsOwner reports whether the caller holds the store-owner role.
func (c Caller) IsOwner() bool {
	return c.Role == entity.RoleOwner
}
