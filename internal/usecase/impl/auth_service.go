// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the public registration flow. New accounts always
// start with the plain user role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process and opens a refresh session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	loggedInUser, err := srv.loadLoginUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Error("Failed to store refresh token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// loadLoginUser reads the account from the primary in a short transaction to
// avoid stale reads on replicas. An unknown email is reported as invalid
// credentials so the response never reveals which field was wrong.
func (srv *authService) loadLoginUser(ctx context.Context, email string) (*entity.User, error) {
	var loggedInUser *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findErr error
		loggedInUser, findErr = userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return loggedInUser, nil
}

// RefreshToken rotates a valid refresh session: the presented token's session
// is replaced by a fresh one and a new token pair is returned.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var output *usecase.RefreshTokenOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		if _, findErr := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) || errors.Is(findErr, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh session not found or expired")
			}

			return errors.Wrap(findErr, "failed to find refresh session")
		}

		user, findErr := userRepo.FindByID(ctx, claims.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user for token refresh")
		}

		accessToken, refreshTokenString, genErr := srv.tokenService.GenerateTokens(user.ID, user.Role)
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate new tokens")
		}

		// Rotation: the presented session dies with the old token.
		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
			return errors.Wrap(delErr, "failed to delete rotated refresh session")
		}

		if storeErr := srv.storeRefreshToken(ctx, refreshRepo, user.ID, refreshTokenString); storeErr != nil {
			return storeErr
		}

		output = &usecase.RefreshTokenOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshTokenString,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute token refresh transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token refresh transaction")
	}

	return output, nil
}

// Logout invalidates the caller's session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete its session.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		// A missing session means the user is already logged out.
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout for unknown session")

			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// UpdatePassword changes the caller's password after verifying the current one.
func (srv *authService) UpdatePassword(ctx context.Context, caller usecase.Caller, input *usecase.UpdatePasswordInput) error {
	srv.log(ctx).Info("Attempting password update", slog.Any("userID", caller.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, caller.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user for password update")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}

		if valErr := srv.hasher.ValidatePasswordStrength(input.NewPassword); valErr != nil {
			return errors.Wrap(valErr, "new password does not meet security requirements")
		}

		hashedPassword, hashErr := srv.hasher.Hash(input.NewPassword)
		if hashErr != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
		}

		user.PasswordHash = hashedPassword

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute password update transaction", slog.Any("userID", caller.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password update transaction")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", caller.UserID))

	return nil
}

// UpdateProfile changes the caller's own name, email or address. Nil input
// fields are left untouched.
func (srv *authService) UpdateProfile(ctx context.Context, caller usecase.Caller, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Attempting profile update", slog.Any("userID", caller.UserID))

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, caller.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user for profile update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil && *input.Email != user.Email {
			if _, emailErr := userRepo.FindByEmail(ctx, *input.Email); emailErr == nil {
				return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already in use")
			} else if !errors.Is(emailErr, repository.ErrUserNotFound) {
				return errors.Wrap(emailErr, "failed to check email availability")
			}
			user.Email = *input.Email
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user profile")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute profile update transaction", slog.Any("userID", caller.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updatedUser, nil
}

// CleanupExpiredSessions removes all expired refresh sessions. Run it
// periodically so abandoned sessions do not accumulate.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) error {
	srv.log(ctx).Info("Cleaning up expired sessions")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		return refreshRepo.DeleteExpiredRefreshTokens(ctx)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to cleanup expired sessions")
	}

	srv.log(ctx).Info("Successfully cleaned up expired sessions")

	return nil
}

// storeRefreshToken hashes and persists a refresh token as a session row.
func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
