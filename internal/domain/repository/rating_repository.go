package repository

import (
	"context"
	"errors"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is a domain-specific error returned when a rating is not found.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
// The one-rating-per-(user, store) invariant is backed by a composite unique
// index; Create surfaces a violation as a Conflict domain error.
type RatingRepository interface {
	// FindByID retrieves a single rating by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindByUserAndStore retrieves the caller's rating for a store, if any.
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)

	// Create persists a new rating row.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update overwrites the value of an existing rating in place. Identity
	// and creation timestamp are preserved.
	Update(ctx context.Context, rating *entity.Rating) error

	// Delete removes a rating row by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByStore returns a store's ratings, newest first, each carrying its
	// rater's identity.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Rating, error)

	// ListByUser returns a user's ratings, newest first, each carrying its
	// store.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
