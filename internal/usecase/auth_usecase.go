package usecase

import (
	"context"

	"rater/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The role always defaults to 'user'; privileged accounts are created
// through the admin directory instead.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for rotation.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// UpdatePasswordInput defines the data required to change the caller's password.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// UpdateProfileInput defines the profile fields the caller may change.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name    *string
	Email   *string
	Address *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication and account-self-service
// operations. This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	UpdatePassword(ctx context.Context, caller Caller, input *UpdatePasswordInput) error
	UpdateProfile(ctx context.Context, caller Caller, input *UpdateProfileInput) (*entity.User, error)
	// CleanupExpiredSessions purges refresh sessions whose expiry has passed.
	CleanupExpiredSessions(ctx context.Context) error
}
