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

type directoryServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	storeRepo  *mockRepo.MockStoreRepository
	ratingRepo *mockRepo.MockRatingRepository
	hasher     *mockSvc.MockPasswordHasher
}

func newDirectoryService(m directoryServiceMocks) usecase.DirectoryUsecase {
	return NewDirectoryService(DirectoryServiceParams{
		TxManager:  m.txManager,
		UserRepo:   m.userRepo,
		StoreRepo:  m.storeRepo,
		RatingRepo: m.ratingRepo,
		Hasher:     m.hasher,
		Logger:     testLogger(),
	})
}

func defaultDirectoryMocks(t *testing.T) directoryServiceMocks {
	return directoryServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		storeRepo:  mockRepo.NewMockStoreRepository(t),
		ratingRepo: mockRepo.NewMockRatingRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
	}
}

func TestDirectoryService_ListUsers_ClampsPageAndLimit(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	// Page 0 and limit 0 fall back to page 1 and the default page size.
	mocks.userRepo.EXPECT().
		List(ctx, repository.UserDirectoryQuery{Page: 1, Limit: 10}).
		Return([]*entity.User{}, 0, nil)

	page, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalPages)
}

func TestDirectoryService_ListUsers_CapsOversizedLimit(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		List(ctx, repository.UserDirectoryQuery{Page: 2, Limit: 100}).
		Return([]*entity.User{{ID: uuid.New()}}, 101, nil)

	page, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 2, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestDirectoryService_ListUsers_TotalPagesRoundsUp(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		List(ctx, repository.UserDirectoryQuery{Role: "owner", SortBy: "email", SortOrder: "desc", Page: 1, Limit: 10}).
		Return([]*entity.User{{ID: uuid.New()}}, 21, nil)

	page, err := svc.ListUsers(ctx, &usecase.ListUsersInput{
		Role:      "owner",
		SortBy:    "email",
		SortOrder: "desc",
		Page:      1,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
}

func TestDirectoryService_GetUser_IncludesOwnedStoreAverages(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()
	userID := uuid.New()
	store := &entity.Store{
		ID:      uuid.New(),
		Name:    "Night Market Stand",
		OwnerID: userID,
		Ratings: []*entity.Rating{{Value: 3}, {Value: 5}},
	}

	mocks.userRepo.EXPECT().
		FindByIDWithRelations(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleOwner, OwnedStores: []*entity.Store{store}}, nil)

	detail, err := svc.GetUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, detail.OwnedStores, 1)
	assert.InDelta(t, 4.0, detail.OwnedStores[0].Summary.Average, 0.001)
	assert.Equal(t, 2, detail.OwnedStores[0].Summary.Count)
}

func TestDirectoryService_GetUser_NotFound(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindByIDWithRelations(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	detail, err := svc.GetUser(ctx, userID)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDirectoryService_CreateUser_WithExplicitRole(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultDirectoryMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	mocks.hasher.EXPECT().ValidatePasswordStrength("Adm1nSecret!").Return(nil)
	mocks.hasher.EXPECT().Hash("Adm1nSecret!").Return("hashed-password", nil)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(nil, repository.ErrUserNotFound)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	created, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Platform Administrator Account",
		Email:    "admin@example.com",
		Password: "Adm1nSecret!",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.Equal(t, "hashed-password", created.PasswordHash)
}

func TestDirectoryService_CreateUser_UnknownRoleRejected(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	created, err := svc.CreateUser(context.Background(), &usecase.CreateUserInput{
		Email:    "user@example.com",
		Password: "Sup3rSecret!",
		Role:     entity.Role("superuser"),
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDirectoryService_CreateUser_DuplicateEmail(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultDirectoryMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	mocks.hasher.EXPECT().ValidatePasswordStrength("Sup3rSecret!").Return(nil)
	mocks.hasher.EXPECT().Hash("Sup3rSecret!").Return("hashed-password", nil)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	created, err := svc.CreateUser(ctx, &usecase.CreateUserInput{
		Email:    "taken@example.com",
		Password: "Sup3rSecret!",
		Role:     entity.RoleUser,
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestDirectoryService_Stats_CollectsAllCounts(t *testing.T) {
	mocks := defaultDirectoryMocks(t)
	svc := newDirectoryService(mocks)

	ctx := context.Background()

	mocks.userRepo.EXPECT().Count(ctx).Return(120, nil)
	mocks.storeRepo.EXPECT().Count(ctx).Return(35, nil)
	mocks.ratingRepo.EXPECT().Count(ctx).Return(980, nil)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(35), stats.TotalStores)
	assert.Equal(t, int64(980), stats.TotalRatings)
}
