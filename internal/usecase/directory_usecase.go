package usecase

import (
	"context"

	"rater/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListUsersInput carries the admin directory filters. String filters are
// case-insensitive partial matches; Role is an exact match when set.
type ListUsersInput struct {
	Name      string
	Email     string
	Address   string
	Role      entity.Role
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// CreateUserInput defines the data an admin provides to create an account
// with an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

// --- Output DTOs ---

// UserDirectoryPage is one page of the admin user directory.
type UserDirectoryPage struct {
	Users       []*entity.User
	Total       int64
	CurrentPage int
	TotalPages  int
}

// OwnedStoreView pairs an owned store with its rating summary for the user
// detail view.
type OwnedStoreView struct {
	Store   *entity.Store
	Summary entity.RatingSummary
}

// UserDetail is the admin view of a single user, including owned stores with
// their aggregates and the user's submitted ratings.
type UserDetail struct {
	User        *entity.User
	OwnedStores []*OwnedStoreView
}

// DashboardStats carries the platform-wide totals for the admin dashboard.
type DashboardStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}

// DirectoryUsecase defines the interface for the admin user directory and
// dashboard.
type DirectoryUsecase interface {
	// ListUsers returns a filtered, sorted, paginated page of the directory.
	ListUsers(ctx context.Context, input *ListUsersInput) (*UserDirectoryPage, error)

	// GetUser returns a user's detail with owned stores and ratings.
	GetUser(ctx context.Context, userID uuid.UUID) (*UserDetail, error)

	// CreateUser creates an account with an explicit role.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// Stats returns the platform-wide totals.
	Stats(ctx context.Context) (*DashboardStats, error)
}
