package impl

import (
	"context"
	"log/slog"

	"rater/config"
	deliverycontext "rater/internal/delivery/context"
	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	"rater/internal/domain/service"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	ratingRepo   repository.RatingRepository
	hasher       service.PasswordHasher
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	defaultLimit, maxLimit := 10, 100
	if params.Config != nil && params.Config.Directory != nil {
		defaultLimit = params.Config.Directory.DefaultLimit
		maxLimit = params.Config.Directory.MaxLimit
	}

	return &directoryService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		ratingRepo:   params.RatingRepo,
		hasher:       params.Hasher,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one filtered, sorted page of the user directory.
func (srv *directoryService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserDirectoryPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit < 1 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	users, total, err := srv.userRepo.List(ctx, repository.UserDirectoryQuery{
		Name:      input.Name,
		Email:     input.Email,
		Address:   input.Address,
		Role:      input.Role,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.UserDirectoryPage{
		Users:       users,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

// GetUser returns a user's detail with owned stores (each with its aggregate)
// and submitted ratings.
func (srv *directoryService) GetUser(ctx context.Context, userID uuid.UUID) (*usecase.UserDetail, error) {
	user, err := srv.userRepo.FindByIDWithRelations(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}
		srv.log(ctx).Error("Failed to load user detail", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user detail")
	}

	ownedStores := make([]*usecase.OwnedStoreView, 0, len(user.OwnedStores))
	for _, store := range user.OwnedStores {
		ownedStores = append(ownedStores, &usecase.OwnedStoreView{
			Store:   store,
			Summary: entity.SummarizeRatingRows(store.Ratings),
		})
	}

	return &usecase.UserDetail{
		User:        user,
		OwnedStores: ownedStores,
	}, nil
}

// CreateUser creates an account with an explicit role. Admin only by route
// policy; the role itself is validated here.
func (srv *directoryService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating user", slog.String("email", input.Email), slog.Any("role", input.Role))

	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         input.Role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user creation transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	return newUser, nil
}

// Stats returns the platform-wide totals for the admin dashboard.
func (srv *directoryService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	totalStores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	totalRatings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
