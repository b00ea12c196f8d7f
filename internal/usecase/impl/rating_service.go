package impl

import (
	"context"
	"log/slog"

	deliverycontext "rater/internal/delivery/context"
	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	StoreRepo  repository.StoreRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		storeRepo:  params.StoreRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records the caller's rating for a store. The existence pre-check
// gives a clean conflict answer; the unique index catches the race where two
// submissions for the same pair arrive together.
func (srv *ratingService) Submit(ctx context.Context, caller usecase.Caller, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	srv.log(ctx).Info("Submitting rating", slog.Any("userID", caller.UserID), slog.Any("storeID", input.StoreID))

	newRating := &entity.Rating{
		UserID:  caller.UserID,
		StoreID: input.StoreID,
		Value:   input.Value,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		storeRepo := repoFactory.StoreRepo()
		ratingRepo := repoFactory.RatingRepo()

		if _, findErr := storeRepo.FindByID(ctx, input.StoreID); findErr != nil {
			if errors.Is(findErr, repository.ErrStoreNotFound) {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "cannot rate a missing store")
			}

			return errors.Wrap(findErr, "failed to find store for rating")
		}

		if _, findErr := ratingRepo.FindByUserAndStore(ctx, caller.UserID, input.StoreID); findErr == nil {
			return domainerrors.ErrRatingConflict.WrapMessage("store already rated by this user")
		} else if !errors.Is(findErr, repository.ErrRatingNotFound) {
			return errors.Wrap(findErr, "failed to check for existing rating")
		}

		return ratingRepo.Create(ctx, newRating)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute rating submission transaction", slog.Any("userID", caller.UserID), slog.Any("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating submission transaction")
	}

	return newRating, nil
}

// Update overwrites the caller's existing rating value for a store. The
// rating's identity and creation time survive the update.
func (srv *ratingService) Update(ctx context.Context, caller usecase.Caller, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	srv.log(ctx).Info("Updating rating", slog.Any("userID", caller.UserID), slog.Any("storeID", input.StoreID))

	var updatedRating *entity.Rating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		existing, findErr := ratingRepo.FindByUserAndStore(ctx, caller.UserID, input.StoreID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRatingNotFound) {
				return errors.Wrap(domainerrors.ErrRatingNotFound, "no rating to update for this store")
			}

			return errors.Wrap(findErr, "failed to find rating for update")
		}

		existing.Value = input.Value

		if updateErr := ratingRepo.Update(ctx, existing); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update rating")
		}

		updatedRating = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute rating update transaction", slog.Any("userID", caller.UserID), slog.Any("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating update transaction")
	}

	return updatedRating, nil
}

// Delete removes a rating by ID after verifying the caller authored it.
func (srv *ratingService) Delete(ctx context.Context, caller usecase.Caller, ratingID uuid.UUID) error {
	srv.log(ctx).Info("Deleting rating", slog.Any("userID", caller.UserID), slog.Any("ratingID", ratingID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		rating, findErr := ratingRepo.FindByID(ctx, ratingID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRatingNotFound) {
				return errors.Wrap(domainerrors.ErrRatingNotFound, "rating not found")
			}

			return errors.Wrap(findErr, "failed to find rating for deletion")
		}

		if rating.UserID != caller.UserID {
			return errors.Wrap(domainerrors.ErrRatingOwnershipViolation, "rating belongs to another user")
		}

		return ratingRepo.Delete(ctx, ratingID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute rating deletion transaction", slog.Any("ratingID", ratingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute rating deletion transaction")
	}

	return nil
}

// StoreRatings returns a store's full rating list for privileged callers.
// Admins may read any store; owners only their own.
func (srv *ratingService) StoreRatings(ctx context.Context, caller usecase.Caller, storeID uuid.UUID) (*usecase.StoreRatingsOutput, error) {
	srv.log(ctx).Debug("Listing store ratings", slog.Any("userID", caller.UserID), slog.Any("storeID", storeID))

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not found")
		}

		return nil, errors.Wrap(err, "failed to find store for rating list")
	}

	if err := authorizeStoreRatings(caller, store); err != nil {
		srv.log(ctx).Warn("Refused store rating list", slog.Any("userID", caller.UserID), slog.Any("storeID", storeID))

		return nil, err
	}

	ratings, err := srv.ratingRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store ratings")
	}

	return &usecase.StoreRatingsOutput{
		Ratings: ratings,
		Summary: entity.SummarizeRatingRows(ratings),
	}, nil
}

// authorizeStoreRatings applies the access rule for the full rating list.
func authorizeStoreRatings(caller usecase.Caller, store *entity.Store) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.IsOwner() {
		if store.OwnerID == caller.UserID {
			return nil
		}

		return errors.Wrap(domainerrors.ErrStoreRatingsForbidden, "store belongs to another owner")
	}

	return errors.Wrap(domainerrors.ErrStoreRatingsForbidden, "rating list requires owner or admin role")
}

// UserRatings returns the caller's own ratings, newest first.
func (srv *ratingService) UserRatings(ctx context.Context, caller usecase.Caller) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list user ratings", slog.Any("userID", caller.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user ratings")
	}

	return ratings, nil
}
