package repository

import (
	"context"
	"errors"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreQuery carries the public store listing filters. Name and Address are
// case-insensitive partial matches. An empty SortBy leaves the result
// unordered (the search endpoint); the listing endpoint defaults to name
// ascending at the usecase layer.
type StoreQuery struct {
	Name    string
	Address string

	// SortBy is one of name, email, address, createdAt.
	SortBy    string
	SortOrder string
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a store with its owner and ratings (each rating
	// carrying its rater) preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByEmail retrieves a single store by its contact email.
	FindByEmail(ctx context.Context, email string) (*entity.Store, error)

	// Create persists a new store entity to the storage.
	Create(ctx context.Context, store *entity.Store) error

	// List returns stores matching the query with owner and rating values
	// preloaded, so per-store aggregates can be recomputed on read.
	List(ctx context.Context, query StoreQuery) ([]*entity.Store, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
