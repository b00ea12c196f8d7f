package handler

import (
	"log/slog"
	"net/http"

	"rater/internal/delivery/http/middleware"
	"rater/internal/delivery/http/response"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		uc:     uc,
		logger: logger,
	}
}

type ratingRequest struct {
	StoreID uuid.UUID `json:"storeId" validate:"required"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
}

// Submit handles the first rating of a store by the caller.
func (h *RatingHandler) Submit(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.Submit(c.Request().Context(), caller, &usecase.SubmitRatingInput{
		StoreID: req.StoreID,
		Value:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRatingResponse(rating), "Rating submitted successfully")
}

// Update handles overwriting the caller's existing rating for a store.
func (h *RatingHandler) Update(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.Update(c.Request().Context(), caller, &usecase.UpdateRatingInput{
		StoreID: req.StoreID,
		Value:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRatingResponse(rating), "Rating updated successfully")
}

// Delete handles removal of the caller's own rating by ID.
func (h *RatingHandler) Delete(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	ratingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rating ID")
	}

	if err := h.uc.Delete(c.Request().Context(), caller, ratingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rating deleted successfully")
}

type storeRatingsResponse struct {
	Ratings       []*ratingResponse `json:"ratings"`
	AverageRating float64           `json:"averageRating"`
	TotalRatings  int               `json:"totalRatings"`
}

// StoreRatings handles the owner/admin view of a store's full rating list.
func (h *RatingHandler) StoreRatings(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	storeID, err := uuid.Parse(c.Param("storeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	output, err := h.uc.StoreRatings(c.Request().Context(), caller, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storeRatingsResponse{
		Ratings:       newRatingResponses(output.Ratings),
		AverageRating: output.Summary.Average,
		TotalRatings:  output.Summary.Count,
	}, "Store ratings retrieved successfully")
}

// UserRatings handles the caller's own rating list, newest first.
func (h *RatingHandler) UserRatings(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	ratings, err := h.uc.UserRatings(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRatingResponses(ratings), "Ratings retrieved successfully")
}
