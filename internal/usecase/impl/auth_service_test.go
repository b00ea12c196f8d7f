package impl

import (
	"context"
	"testing"
	"time"

	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	"rater/internal/domain/service"
	mockRepo "rater/internal/mocks/repository"
	mockSvc "rater/internal/mocks/service"
	"rater/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newAuthService(m authServiceMocks) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		Logger:           testLogger(),
	})
}

func defaultAuthMocks(t *testing.T) authServiceMocks {
	return authServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}
}

// refreshClaims builds refresh-token claims for a user.
func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: "refresh"}
}

func TestAuthService_Register_NewAccountDefaultsToUserRole(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "A Sufficiently Long User Name",
		Email:    "user@example.com",
		Password: "Sup3rSecret!",
		Address:  "台北市大安區",
	}

	mocks.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	txUserRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
}

func TestAuthService_Register_WeakPasswordRejected(t *testing.T) {
	mocks := defaultAuthMocks(t)
	svc := newAuthService(mocks)

	mocks.hasher.EXPECT().
		ValidatePasswordStrength("short").
		Return(errors.Wrap(domainerrors.ErrPasswordStrength, "too short"))

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "user@example.com",
		Password: "short",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()

	mocks.hasher.EXPECT().ValidatePasswordStrength("Sup3rSecret!").Return(nil)
	mocks.hasher.EXPECT().Hash("Sup3rSecret!").Return("hashed-password", nil)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Sup3rSecret!",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	txUserRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	mocks.hasher.EXPECT().Check("Sup3rSecret!", "stored-hash").Return(true)
	mocks.tokenService.EXPECT().GenerateTokens(userID, entity.RoleUser).Return("access", "refresh", nil)
	mocks.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	mocks.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)

			return nil
		})

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Sup3rSecret!"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmailHidesWhichFieldFailed(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()

	txUserRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", PasswordHash: "stored-hash"}

	txUserRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	mocks.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	mocks := defaultAuthMocks(t)
	svc := newAuthService(mocks)

	ctx := context.Background()

	mocks.tokenService.EXPECT().ValidateToken("refresh").Return(refreshClaims(uuid.New()), nil)
	mocks.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	mocks.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
}

func TestAuthService_Logout_UnknownSessionIsIdempotent(t *testing.T) {
	mocks := defaultAuthMocks(t)
	svc := newAuthService(mocks)

	ctx := context.Background()

	mocks.tokenService.EXPECT().ValidateToken("refresh").Return(refreshClaims(uuid.New()), nil)
	mocks.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	mocks.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
}

func TestAuthService_RefreshToken_RotatesSession(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	userID := uuid.New()

	mocks.tokenService.EXPECT().ValidateToken("old-refresh").Return(refreshClaims(userID), nil)
	mocks.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)

	txUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleOwner}, nil)

	mocks.tokenService.EXPECT().GenerateTokens(userID, entity.RoleOwner).Return("new-access", "new-refresh", nil)

	txRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)

	mocks.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.Equal(t, "new-hash", token.TokenHash)

			return nil
		})

	output, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_UnknownSession(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()

	mocks.tokenService.EXPECT().ValidateToken("old-refresh").Return(refreshClaims(uuid.New()), nil)
	mocks.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	txRefreshRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_TamperedToken(t *testing.T) {
	mocks := defaultAuthMocks(t)
	svc := newAuthService(mocks)

	mocks.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token signature is invalid"))

	output, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_UpdatePassword_VerifiesCurrent(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	user := &entity.User{ID: caller.UserID, PasswordHash: "old-hash"}

	txUserRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	mocks.hasher.EXPECT().Check("wrong-current", "old-hash").Return(false)

	err := svc.UpdatePassword(ctx, caller, &usecase.UpdatePasswordInput{
		CurrentPassword: "wrong-current",
		NewPassword:     "N3wSecret!pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_UpdatePassword_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	user := &entity.User{ID: caller.UserID, PasswordHash: "old-hash"}

	txUserRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	mocks.hasher.EXPECT().Check("OldSecret!1", "old-hash").Return(true)
	mocks.hasher.EXPECT().ValidatePasswordStrength("N3wSecret!pw").Return(nil)
	mocks.hasher.EXPECT().Hash("N3wSecret!pw").Return("new-hash", nil)

	txUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, updated *entity.User) error {
			assert.Equal(t, "new-hash", updated.PasswordHash)

			return nil
		})

	require.NoError(t, svc.UpdatePassword(ctx, caller, &usecase.UpdatePasswordInput{
		CurrentPassword: "OldSecret!1",
		NewPassword:     "N3wSecret!pw",
	}))
}

func TestAuthService_UpdateProfile_DuplicateEmailConflicts(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	newEmail := "taken@example.com"

	txUserRepo.EXPECT().
		FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Email: "old@example.com"}, nil)

	txUserRepo.EXPECT().
		FindByEmail(ctx, newEmail).
		Return(&entity.User{ID: uuid.New(), Email: newEmail}, nil)

	updated, err := svc.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{Email: &newEmail})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_UpdateProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleUser}
	newAddress := "新北市板橋區"

	txUserRepo.EXPECT().
		FindByID(ctx, caller.UserID).
		Return(&entity.User{ID: caller.UserID, Name: "Unchanged Name", Email: "user@example.com", Address: "舊地址"}, nil)

	txUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	updated, err := svc.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{Address: &newAddress})
	require.NoError(t, err)
	assert.Equal(t, "Unchanged Name", updated.Name)
	assert.Equal(t, "user@example.com", updated.Email)
	assert.Equal(t, newAddress, updated.Address)
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()

	txRefreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(nil)

	require.NoError(t, svc.CleanupExpiredSessions(ctx))
}

func TestAuthService_CleanupExpiredSessions_RepositoryError(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)

	mocks := defaultAuthMocks(t)
	mocks.txManager = passthroughTx(t, factory)
	svc := newAuthService(mocks)

	ctx := context.Background()

	txRefreshRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(assert.AnError)

	err := svc.CleanupExpiredSessions(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
