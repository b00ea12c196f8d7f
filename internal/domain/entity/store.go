package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a rateable store. Every store is linked to exactly one
// owning user (role owner); nothing prevents one owner from owning several
// stores.
type Store struct {
	ID        uuid.UUID // The unique identifier for the store.
	Name      string    // The store's display name (2-60 characters).
	Email     string    // The store's unique contact email.
	Address   string    // The store's postal address, at most 400 characters.
	OwnerID   uuid.UUID // Foreign key to the owning user.
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is the owning user, populated on preload. PasswordHash is never
	// carried across the API boundary.
	Owner *User

	// Ratings holds the store's ratings when the repository preloads them.
	// Aggregates are always recomputed from this set, never stored.
	Ratings []*Rating
}
