package usecase

import (
	"context"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitRatingInput defines the data required to rate a store.
type SubmitRatingInput struct {
	StoreID uuid.UUID
	Value   int
}

// UpdateRatingInput defines the data required to overwrite the caller's
// existing rating for a store.
type UpdateRatingInput struct {
	StoreID uuid.UUID
	Value   int
}

// --- Output DTOs ---

// StoreRatingsOutput returns a store's full rating list together with the
// aggregate recomputed from those rows.
type StoreRatingsOutput struct {
	Ratings []*entity.Rating
	Summary entity.RatingSummary
}

// RatingUsecase defines the interface for rating submission and retrieval.
type RatingUsecase interface {
	// Submit records the caller's rating for a store. A second submission
	// for the same store is a conflict; Update is the path for changing it.
	Submit(ctx context.Context, caller Caller, input *SubmitRatingInput) (*entity.Rating, error)

	// Update overwrites the caller's existing rating value for a store,
	// preserving the rating's identity and creation time.
	Update(ctx context.Context, caller Caller, input *UpdateRatingInput) (*entity.Rating, error)

	// Delete removes a rating by ID. Only the rating's author may delete it.
	Delete(ctx context.Context, caller Caller, ratingID uuid.UUID) error

	// StoreRatings returns a store's full rating list. Admins may read any
	// store; owners only their own store; everyone else is refused.
	StoreRatings(ctx context.Context, caller Caller, storeID uuid.UUID) (*StoreRatingsOutput, error)

	// UserRatings returns the caller's own ratings, newest first, each
	// carrying its store.
	UserRatings(ctx context.Context, caller Caller) ([]*entity.Rating, error)
}
