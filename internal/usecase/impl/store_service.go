package impl

import (
	"context"
	"log/slog"

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

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns stores matching the filters, name ascending unless another
// sort is requested, each paired with its recomputed rating summary.
func (srv *storeService) List(ctx context.Context, input *usecase.ListStoresInput) ([]*usecase.StoreView, error) {
	query := repository.StoreQuery{
		Name:      input.Name,
		Address:   input.Address,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	}
	if query.SortBy == "" {
		query.SortBy = "name"
	}

	return srv.listStores(ctx, query)
}

// Search applies the same filters with no ordering guarantee.
func (srv *storeService) Search(ctx context.Context, input *usecase.ListStoresInput) ([]*usecase.StoreView, error) {
	query := repository.StoreQuery{
		Name:    input.Name,
		Address: input.Address,
	}

	return srv.listStores(ctx, query)
}

func (srv *storeService) listStores(ctx context.Context, query repository.StoreQuery) ([]*usecase.StoreView, error) {
	stores, err := srv.storeRepo.List(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Failed to list stores", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stores")
	}

	views := make([]*usecase.StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, &usecase.StoreView{
			Store:   store,
			Summary: entity.SummarizeRatingRows(store.Ratings),
		})
	}

	return views, nil
}

// GetByID returns the store detail. When a viewer is present, their own
// rating value for the store rides along.
func (srv *storeService) GetByID(ctx context.Context, storeID uuid.UUID, viewerID *uuid.UUID) (*usecase.StoreDetail, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}
		srv.log(ctx).Error("Failed to find store", slog.Any("storeID", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	detail := &usecase.StoreDetail{
		StoreView: usecase.StoreView{
			Store:   store,
			Summary: entity.SummarizeRatingRows(store.Ratings),
		},
	}

	// The ratings are already loaded for the aggregate, so the viewer's own
	// rating is a scan, not another query.
	if viewerID != nil {
		for _, rating := range store.Ratings {
			if rating.UserID == *viewerID {
				value := rating.Value
				detail.UserRating = &value

				break
			}
		}
	}

	return detail, nil
}

// CreateStoreWithOwner atomically creates a store together with its owner
// account. Any failure rolls back both rows.
func (srv *storeService) CreateStoreWithOwner(ctx context.Context, caller usecase.Caller, input *usecase.CreateStoreInput) (*usecase.CreateStoreOutput, error) {
	if !caller.IsAdmin() {
		srv.log(ctx).Warn("Non-admin attempted store creation", slog.Any("userID", caller.UserID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "store creation requires admin role")
	}

	srv.log(ctx).Info("Creating store with owner", slog.String("storeEmail", input.Email), slog.String("ownerEmail", input.OwnerEmail))

	if err := srv.hasher.ValidatePasswordStrength(input.OwnerPassword); err != nil {
		return nil, errors.Wrap(err, "owner password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.OwnerPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash owner password")
	}

	owner := &entity.User{
		Name:         input.OwnerName,
		Email:        input.OwnerEmail,
		PasswordHash: hashedPassword,
		Address:      input.OwnerAddress,
		Role:         entity.RoleOwner,
	}
	store := &entity.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		storeRepo := repoFactory.StoreRepo()

		if _, findErr := storeRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store email already in use")
		} else if !errors.Is(findErr, repository.ErrStoreNotFound) {
			return errors.Wrap(findErr, "failed to check store email availability")
		}

		if _, findErr := userRepo.FindByEmail(ctx, input.OwnerEmail); findErr == nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("owner email already registered")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check owner email availability")
		}

		if createErr := userRepo.Create(ctx, owner); createErr != nil {
			return errors.Wrap(createErr, "failed to create owner account")
		}

		store.OwnerID = owner.ID

		if createErr := storeRepo.Create(ctx, store); createErr != nil {
			return errors.Wrap(createErr, "failed to create store")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute store creation transaction", slog.String("storeEmail", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute store creation transaction")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.Any("ownerID", owner.ID))

	return &usecase.CreateStoreOutput{Store: store, Owner: owner}, nil
}
