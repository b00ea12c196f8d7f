package impl

import (
	"context"
	"testing"
	"time"

	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	mockRepo "rater/internal/mocks/repository"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatingService(txManager *mockRepo.MockTransactionManager, ratingRepo *mockRepo.MockRatingRepository, storeRepo *mockRepo.MockStoreRepository) usecase.RatingUsecase {
	return NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		StoreRepo:  storeRepo,
		Logger:     testLogger(),
	})
}

func TestRatingService_Submit_FirstRating(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	factory.EXPECT().StoreRepo().Return(txStoreRepo)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	txStoreRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	txRatingRepo.EXPECT().
		FindByUserAndStore(ctx, caller.UserID, storeID).
		Return(nil, repository.ErrRatingNotFound)

	txRatingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rating")).
		Return(nil)

	rating, err := service.Submit(ctx, caller, &usecase.SubmitRatingInput{StoreID: storeID, Value: 4})
	require.NoError(t, err)
	assert.Equal(t, caller.UserID, rating.UserID)
	assert.Equal(t, storeID, rating.StoreID)
	assert.Equal(t, 4, rating.Value)
}

func TestRatingService_Submit_MissingStore(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	factory.EXPECT().StoreRepo().Return(txStoreRepo)
	factory.EXPECT().RatingRepo().Return(mockRepo.NewMockRatingRepository(t))

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	txStoreRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	rating, err := service.Submit(ctx, caller, &usecase.SubmitRatingInput{StoreID: storeID, Value: 4})
	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestRatingService_Submit_DuplicateRatingConflicts(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	factory.EXPECT().StoreRepo().Return(txStoreRepo)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	txStoreRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	txRatingRepo.EXPECT().
		FindByUserAndStore(ctx, caller.UserID, storeID).
		Return(&entity.Rating{ID: uuid.New(), UserID: caller.UserID, StoreID: storeID, Value: 5}, nil)

	rating, err := service.Submit(ctx, caller, &usecase.SubmitRatingInput{StoreID: storeID, Value: 2})
	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrRatingConflict)
}

func TestRatingService_Update_PreservesIdentity(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()
	ratingID := uuid.New()
	createdAt := time.Now().Add(-time.Hour)

	existing := &entity.Rating{
		ID:        ratingID,
		UserID:    caller.UserID,
		StoreID:   storeID,
		Value:     2,
		CreatedAt: createdAt,
	}

	txRatingRepo.EXPECT().
		FindByUserAndStore(ctx, caller.UserID, storeID).
		Return(existing, nil)

	txRatingRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	updated, err := service.Update(ctx, caller, &usecase.UpdateRatingInput{StoreID: storeID, Value: 5})
	require.NoError(t, err)
	assert.Equal(t, ratingID, updated.ID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, 5, updated.Value)
}

func TestRatingService_Update_NothingToUpdate(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	storeID := uuid.New()

	txRatingRepo.EXPECT().
		FindByUserAndStore(ctx, caller.UserID, storeID).
		Return(nil, repository.ErrRatingNotFound)

	updated, err := service.Update(ctx, caller, &usecase.UpdateRatingInput{StoreID: storeID, Value: 5})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrRatingNotFound)
}

func TestRatingService_Delete_OwnRating(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	ratingID := uuid.New()

	txRatingRepo.EXPECT().
		FindByID(ctx, ratingID).
		Return(&entity.Rating{ID: ratingID, UserID: caller.UserID}, nil)

	txRatingRepo.EXPECT().
		Delete(ctx, ratingID).
		Return(nil)

	require.NoError(t, service.Delete(ctx, caller, ratingID))
}

func TestRatingService_Delete_ForeignRatingForbidden(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	factory.EXPECT().RatingRepo().Return(txRatingRepo)

	txManager := passthroughTx(t, factory)
	service := newRatingService(txManager, mockRepo.NewMockRatingRepository(t), mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	ratingID := uuid.New()

	txRatingRepo.EXPECT().
		FindByID(ctx, ratingID).
		Return(&entity.Rating{ID: ratingID, UserID: uuid.New()}, nil)

	err := service.Delete(ctx, caller, ratingID)
	assert.ErrorIs(t, err, domainerrors.ErrRatingOwnershipViolation)
}

func TestRatingService_StoreRatings_AccessMatrix(t *testing.T) {
	ownerID := uuid.New()
	store := &entity.Store{ID: uuid.New(), OwnerID: ownerID}

	tests := []struct {
		name    string
		caller  usecase.Caller
		allowed bool
	}{
		{"admin reads any store", usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}, true},
		{"owner reads own store", usecase.Caller{UserID: ownerID, Role: entity.RoleOwner}, true},
		{"owner refused for foreign store", usecase.Caller{UserID: uuid.New(), Role: entity.RoleOwner}, false},
		{"plain user refused", usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storeRepo := mockRepo.NewMockStoreRepository(t)
			ratingRepo := mockRepo.NewMockRatingRepository(t)
			service := newRatingService(mockRepo.NewMockTransactionManager(t), ratingRepo, storeRepo)

			ctx := context.Background()

			storeRepo.EXPECT().
				FindByID(ctx, store.ID).
				Return(store, nil)

			if tt.allowed {
				ratingRepo.EXPECT().
					ListByStore(ctx, store.ID).
					Return([]*entity.Rating{
						{ID: uuid.New(), StoreID: store.ID, Value: 5},
						{ID: uuid.New(), StoreID: store.ID, Value: 4},
					}, nil)
			}

			output, err := service.StoreRatings(ctx, tt.caller, store.ID)
			if !tt.allowed {
				assert.ErrorIs(t, err, domainerrors.ErrStoreRatingsForbidden)

				return
			}

			require.NoError(t, err)
			assert.Len(t, output.Ratings, 2)
			assert.InDelta(t, 4.5, output.Summary.Average, 0.001)
			assert.Equal(t, 2, output.Summary.Count)
		})
	}
}

func TestRatingService_StoreRatings_MissingStore(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newRatingService(mockRepo.NewMockTransactionManager(t), mockRepo.NewMockRatingRepository(t), storeRepo)

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	output, err := service.StoreRatings(ctx, usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}, storeID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestRatingService_UserRatings(t *testing.T) {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	service := newRatingService(mockRepo.NewMockTransactionManager(t), ratingRepo, mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	ratingRepo.EXPECT().
		ListByUser(ctx, caller.UserID).
		Return([]*entity.Rating{{ID: uuid.New(), UserID: caller.UserID, Value: 3}}, nil)

	ratings, err := service.UserRatings(ctx, caller)
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
}

func TestRatingService_UserRatings_RepositoryFailure(t *testing.T) {
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	service := newRatingService(mockRepo.NewMockTransactionManager(t), ratingRepo, mockRepo.NewMockStoreRepository(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	ratingRepo.EXPECT().
		ListByUser(ctx, caller.UserID).
		Return(nil, errors.New("connection reset"))

	ratings, err := service.UserRatings(ctx, caller)
	assert.Nil(t, ratings)
	assert.Error(t, err)
}
