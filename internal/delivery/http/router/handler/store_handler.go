package handler

import (
	"log/slog"
	"net/http"

	"rater/internal/delivery/http/middleware"
	"rater/internal/delivery/http/response"
	"rater/internal/domain/entity"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store browsing and administration
// handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// listInput reads the shared listing filters from the query string.
func listInput(c echo.Context) *usecase.ListStoresInput {
	return &usecase.ListStoresInput{
		Name:      c.QueryParam("name"),
		Address:   c.QueryParam("address"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
}

// List handles the public store listing with filters and sorting.
func (h *StoreHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context(), listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreResponses(views), "Stores retrieved successfully")
}

// Search handles the public store search with the same filters, unsorted.
func (h *StoreHandler) Search(c echo.Context) error {
	views, err := h.uc.Search(c.Request().Context(), listInput(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreResponses(views), "Stores retrieved successfully")
}

// GetByID handles the public store detail. When an authenticated caller is
// present, the response carries the caller's own rating value.
func (h *StoreHandler) GetByID(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
	}

	var viewerID *uuid.UUID
	if caller, ok := middleware.CallerFromContext(c); ok {
		viewerID = &caller.UserID
	}

	detail, err := h.uc.GetByID(c.Request().Context(), storeID, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	storeResp := newStoreResponse(detail.Store, detail.Summary)
	storeResp.UserRating = detail.UserRating

	return response.Success(c, http.StatusOK, storeResp, "Store retrieved successfully")
}

type createStoreRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"max=400"`

	OwnerName     string `json:"ownerName" validate:"required,min=20,max=60"`
	OwnerEmail    string `json:"ownerEmail" validate:"required,email"`
	OwnerPassword string `json:"ownerPassword" validate:"required,password"`
	OwnerAddress  string `json:"ownerAddress" validate:"max=400"`
}

type createStoreResponse struct {
	Store *storeResponse `json:"store"`
	Owner *userResponse  `json:"owner"`
}

// Create handles the admin-only atomic creation of a store together with its
// owner account.
func (h *StoreHandler) Create(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid caller in token")
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateStoreWithOwner(c.Request().Context(), caller, &usecase.CreateStoreInput{
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		OwnerName:     req.OwnerName,
		OwnerEmail:    req.OwnerEmail,
		OwnerPassword: req.OwnerPassword,
		OwnerAddress:  req.OwnerAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createStoreResponse{
		Store: newStoreResponse(output.Store, entity.RatingSummary{}),
		Owner: newUserResponse(output.Owner),
	}, "Store created successfully")
}
