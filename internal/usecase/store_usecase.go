package usecase

import (
	"context"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListStoresInput carries the public listing filters. Name and Address are
// case-insensitive partial matches.
type ListStoresInput struct {
	Name      string
	Address   string
	SortBy    string
	SortOrder string
}

// CreateStoreInput defines the data required to create a store together with
// its owner account. Admin only; both rows are written in one transaction.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string

	OwnerName     string
	OwnerEmail    string
	OwnerPassword string
	OwnerAddress  string
}

// --- Output DTOs ---

// StoreView pairs a store with its aggregate, recomputed on read.
type StoreView struct {
	Store   *entity.Store
	Summary entity.RatingSummary
}

// StoreDetail extends StoreView with the viewing caller's own rating value,
// when an authenticated caller is present and has rated the store.
type StoreDetail struct {
	StoreView
	UserRating *int
}

// CreateStoreOutput echoes the created store and owner account. The owner's
// password never leaves the usecase.
type CreateStoreOutput struct {
	Store *entity.Store
	Owner *entity.User
}

// StoreUsecase defines the interface for store browsing and administration.
type StoreUsecase interface {
	// List returns stores matching the filters, sorted by the requested
	// column (name ascending by default), each with its rating summary.
	List(ctx context.Context, input *ListStoresInput) ([]*StoreView, error)

	// Search applies the same filters without any ordering guarantee.
	Search(ctx context.Context, input *ListStoresInput) ([]*StoreView, error)

	// GetByID returns a store's detail. viewerID, when non-nil, attaches the
	// viewer's own rating value.
	GetByID(ctx context.Context, storeID uuid.UUID, viewerID *uuid.UUID) (*StoreDetail, error)

	// CreateStoreWithOwner atomically creates a store and its owner account.
	CreateStoreWithOwner(ctx context.Context, caller Caller, input *CreateStoreInput) (*CreateStoreOutput, error)
}
