package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rating value bounds. The delivery layer validates before the usecase runs,
// but the bounds live here so the domain stays self-describing.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is a single user's 1-5 star rating of a store. At most one rating
// exists per (user, store) pair, enforced by a composite unique index.
type Rating struct {
	ID        uuid.UUID // The unique identifier for this rating row.
	UserID    uuid.UUID // The user who submitted the rating.
	StoreID   uuid.UUID // The store being rated.
	Value     int       // Integer star value, 1 through 5.
	CreatedAt time.Time
	UpdatedAt time.Time

	// User is the rater, populated on preload (store rating list).
	User *User

	// Store is the rated store, populated on preload (own-ratings list).
	Store *Store
}

// RatingSummary is the derived aggregate of a store's ratings. It is computed
// on read and never persisted.
type RatingSummary struct {
	Average float64 // Arithmetic mean rounded to one decimal place; 0 when Count is 0.
	Count   int     // Number of ratings in the set.
}

// SummarizeRatings computes the aggregate for a set of rating values.
// The empty set yields exactly {0, 0}, never NaN.
func SummarizeRatings(values []int) RatingSummary {
	if len(values) == 0 {
		return RatingSummary{}
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	mean := float64(sum) / float64(len(values))

	return RatingSummary{
		Average: math.Round(mean*10) / 10,
		Count:   len(values),
	}
}

// SummarizeRatingRows is a convenience wrapper over SummarizeRatings for
// preloaded rating rows.
func SummarizeRatingRows(ratings []*Rating) RatingSummary {
	values := make([]int, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, r.Value)
	}

	return SummarizeRatings(values)
}
