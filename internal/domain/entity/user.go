// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. A user carries exactly one role; the role
// decides which parts of the platform the account may touch.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's full name (20-60 characters by platform policy).
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // The bcrypt-hashed password. Never exposed through the API.
	Address      string    // Free-form postal address, at most 400 characters.
	Role         Role      // One of admin, user, owner.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.

	// OwnedStores holds the stores this user owns. Populated only when the
	// repository is asked to preload it (admin user detail).
	OwnedStores []*Store

	// Ratings holds the ratings this user has submitted. Populated only on
	// preload (admin user detail).
	Ratings []*Rating
}
