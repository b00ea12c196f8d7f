package impl

import (
	"context"
	"testing"

	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	mockRepo "rater/internal/mocks/repository"
	mockSvc "rater/internal/mocks/service"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreService(txManager *mockRepo.MockTransactionManager, storeRepo *mockRepo.MockStoreRepository, hasher *mockSvc.MockPasswordHasher) usecase.StoreUsecase {
	return NewStoreService(StoreServiceParams{
		TxManager: txManager,
		StoreRepo: storeRepo,
		Hasher:    hasher,
		Logger:    testLogger(),
	})
}

func TestStoreService_List_DefaultsToNameAscending(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newStoreService(mockRepo.NewMockTransactionManager(t), storeRepo, mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()

	storeRepo.EXPECT().
		List(ctx, repository.StoreQuery{Name: "cafe", SortBy: "name"}).
		Return([]*entity.Store{
			{ID: uuid.New(), Name: "Cafe Aroma", Ratings: []*entity.Rating{{Value: 5}, {Value: 4}}},
			{ID: uuid.New(), Name: "Cafe Blue"},
		}, nil)

	views, err := service.List(ctx, &usecase.ListStoresInput{Name: "cafe"})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.InDelta(t, 4.5, views[0].Summary.Average, 0.001)
	assert.Equal(t, 2, views[0].Summary.Count)
	assert.Zero(t, views[1].Summary.Average)
	assert.Zero(t, views[1].Summary.Count)
}

func TestStoreService_Search_LeavesOrderingUnset(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newStoreService(mockRepo.NewMockTransactionManager(t), storeRepo, mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()

	storeRepo.EXPECT().
		List(ctx, repository.StoreQuery{Address: "taipei"}).
		Return([]*entity.Store{}, nil)

	views, err := service.Search(ctx, &usecase.ListStoresInput{Address: "taipei", SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestStoreService_GetByID_AttachesViewerRating(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newStoreService(mockRepo.NewMockTransactionManager(t), storeRepo, mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()
	storeID := uuid.New()
	viewerID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{
			ID: storeID,
			Ratings: []*entity.Rating{
				{UserID: uuid.New(), Value: 5},
				{UserID: viewerID, Value: 4},
				{UserID: uuid.New(), Value: 3},
			},
		}, nil)

	detail, err := service.GetByID(ctx, storeID, &viewerID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, detail.Summary.Average, 0.001)
	assert.Equal(t, 3, detail.Summary.Count)
	require.NotNil(t, detail.UserRating)
	assert.Equal(t, 4, *detail.UserRating)
}

func TestStoreService_GetByID_AnonymousViewer(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newStoreService(mockRepo.NewMockTransactionManager(t), storeRepo, mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	detail, err := service.GetByID(ctx, storeID, nil)
	require.NoError(t, err)
	assert.Nil(t, detail.UserRating)
	assert.Zero(t, detail.Summary.Average)
}

func TestStoreService_GetByID_MissingStore(t *testing.T) {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := newStoreService(mockRepo.NewMockTransactionManager(t), storeRepo, mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()
	storeID := uuid.New()

	storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	detail, err := service.GetByID(ctx, storeID, nil)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_CreateStoreWithOwner_NonAdminForbidden(t *testing.T) {
	service := newStoreService(mockRepo.NewMockTransactionManager(t), mockRepo.NewMockStoreRepository(t), mockSvc.NewMockPasswordHasher(t))

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	output, err := service.CreateStoreWithOwner(ctx, caller, &usecase.CreateStoreInput{})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_CreateStoreWithOwner_CreatesBothRows(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().StoreRepo().Return(txStoreRepo)

	hasher := mockSvc.NewMockPasswordHasher(t)
	txManager := passthroughTx(t, factory)
	service := newStoreService(txManager, mockRepo.NewMockStoreRepository(t), hasher)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
	ownerID := uuid.New()

	input := &usecase.CreateStoreInput{
		Name:          "Morning Brew",
		Email:         "store@example.com",
		Address:       "台北市信義區",
		OwnerName:     "Store Owner With Long Name",
		OwnerEmail:    "owner@example.com",
		OwnerPassword: "Sup3rSecret!",
	}

	hasher.EXPECT().ValidatePasswordStrength(input.OwnerPassword).Return(nil)
	hasher.EXPECT().Hash(input.OwnerPassword).Return("hashed-password", nil)

	txStoreRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrStoreNotFound)

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.OwnerEmail).
		Return(nil, repository.ErrUserNotFound)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = ownerID

			return nil
		})

	txStoreRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	output, err := service.CreateStoreWithOwner(ctx, caller, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, output.Owner.Role)
	assert.Equal(t, "hashed-password", output.Owner.PasswordHash)
	assert.Equal(t, ownerID, output.Store.OwnerID)
}

func TestStoreService_CreateStoreWithOwner_DuplicateStoreEmail(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txStoreRepo := mockRepo.NewMockStoreRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().StoreRepo().Return(txStoreRepo)

	hasher := mockSvc.NewMockPasswordHasher(t)
	txManager := passthroughTx(t, factory)
	service := newStoreService(txManager, mockRepo.NewMockStoreRepository(t), hasher)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	input := &usecase.CreateStoreInput{
		Email:         "store@example.com",
		OwnerEmail:    "owner@example.com",
		OwnerPassword: "Sup3rSecret!",
	}

	hasher.EXPECT().ValidatePasswordStrength(input.OwnerPassword).Return(nil)
	hasher.EXPECT().Hash(input.OwnerPassword).Return("hashed-password", nil)

	txStoreRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Store{ID: uuid.New(), Email: input.Email}, nil)

	output, err := service.CreateStoreWithOwner(ctx, caller, input)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreAlreadyExists)
}
