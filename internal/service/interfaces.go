package service

import (
	"context"

	"github.com/MKhiriev/go-shortener-users/models"
)

// AuthService registers users, checks their credentials and issues the
// session tokens presented in the x-auth-token header.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages existing accounts.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	// Stats summarizes the URLs owned by userID.
	Stats(ctx context.Context, userID string) (models.UserStats, error)
}

// PasswordResetService implements the forgot-password flow: a reset link is
// mailed to the user and redeemed exactly once before it expires.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
