package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rater/internal/delivery/http/response"
	"rater/internal/domain/entity"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin user directory handlers.
type UserHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type userDirectoryResponse struct {
	Users       []*userResponse `json:"users"`
	Total       int64           `json:"total"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

// List handles the paginated, filtered admin user directory.
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Name:      c.QueryParam("name"),
		Email:     c.QueryParam("email"),
		Address:   c.QueryParam("address"),
		Role:      entity.Role(c.QueryParam("role")),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userDirectoryResponse{
		Users:       newUserResponses(output.Users),
		Total:       output.Total,
		CurrentPage: output.CurrentPage,
		TotalPages:  output.TotalPages,
	}, "Users retrieved successfully")
}

type ownedStoreResponse struct {
	Store         *storeResponse `json:"store"`
	AverageRating float64        `json:"averageRating"`
	TotalRatings  int            `json:"totalRatings"`
}

type userDetailResponse struct {
	User        *userResponse         `json:"user"`
	OwnedStores []*ownedStoreResponse `json:"ownedStores"`
	Ratings     []*ratingResponse     `json:"ratings"`
}

// GetByID handles the admin view of a single user, including owned stores
// with their aggregates and the user's submitted ratings.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	detail, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	ownedStores := make([]*ownedStoreResponse, 0, len(detail.OwnedStores))
	for _, owned := range detail.OwnedStores {
		ownedStores = append(ownedStores, &ownedStoreResponse{
			Store:         newStoreResponse(owned.Store, owned.Summary),
			AverageRating: owned.Summary.Average,
			TotalRatings:  owned.Summary.Count,
		})
	}

	return response.Success(c, http.StatusOK, userDetailResponse{
		User:        newUserResponse(detail.User),
		OwnedStores: ownedStores,
		Ratings:     newRatingResponses(detail.User.Ratings),
	}, "User retrieved successfully")
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address" validate:"max=400"`
	Role     string `json:"role" validate:"required,oneof=admin user owner"`
}

// Create handles the admin creation of an account with an explicit role.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "User created successfully")
}

type dashboardStatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// DashboardStats handles the admin dashboard totals.
func (h *UserHandler) DashboardStats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboardStatsResponse{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
	}, "Dashboard stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
