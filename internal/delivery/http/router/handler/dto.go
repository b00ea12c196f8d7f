// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"rater/internal/domain/entity"
	"rater/internal/usecase"

	"github.com/google/uuid"
)

// userResponse is the API shape of an account. The password hash never
// leaves the usecase layer.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// storeResponse is the API shape of a store with its recomputed aggregate.
type storeResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	OwnerID       uuid.UUID `json:"ownerId"`
	AverageRating float64   `json:"averageRating"`
	TotalRatings  int       `json:"totalRatings"`
	UserRating    *int      `json:"userRating,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newStoreResponse(store *entity.Store, summary entity.RatingSummary) *storeResponse {
	return &storeResponse{
		ID:            store.ID,
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		OwnerID:       store.OwnerID,
		AverageRating: summary.Average,
		TotalRatings:  summary.Count,
		CreatedAt:     store.CreatedAt,
	}
}

func newStoreResponses(views []*usecase.StoreView) []*storeResponse {
	out := make([]*storeResponse, 0, len(views))
	for _, view := range views {
		out = append(out, newStoreResponse(view.Store, view.Summary))
	}

	return out
}

// ratingResponse is the API shape of a single rating. StoreName and UserName
// appear only when the corresponding relation was loaded.
type ratingResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"storeId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int       `json:"rating"`
	StoreName string    `json:"storeName,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newRatingResponse(rating *entity.Rating) *ratingResponse {
	out := &ratingResponse{
		ID:        rating.ID,
		StoreID:   rating.StoreID,
		UserID:    rating.UserID,
		Rating:    rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
	if rating.Store != nil {
		out.StoreName = rating.Store.Name
	}
	if rating.User != nil {
		out.UserName = rating.User.Name
	}

	return out
}

func newRatingResponses(ratings []*entity.Rating) []*ratingResponse {
	out := make([]*ratingResponse, 0, len(ratings))
	for _, rating := range ratings {
		out = append(out, newRatingResponse(rating))
	}

	return out
}
