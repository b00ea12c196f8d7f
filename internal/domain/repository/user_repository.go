// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserDirectoryQuery carries the admin directory filters. String filters are
// case-insensitive partial matches; Role is an exact match when set.
type UserDirectoryQuery struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role

	// SortBy is one of name, email, address, role, createdAt. SortOrder is
	// asc or desc. Zero values mean name ascending.
	SortBy    string
	SortOrder string

	// Page is 1-based; Limit is the page size.
	Page  int
	Limit int
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDWithRelations retrieves a user together with their owned stores
	// and submitted ratings (each rating carrying its store).
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List returns the filtered, sorted, paginated user directory along with
	// the total row count before pagination.
	List(ctx context.Context, query UserDirectoryQuery) ([]*entity.User, int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
