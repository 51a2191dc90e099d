package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shortener-users/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Name and email are unique; every
// implementation enforces this atomically and reports violations as
// [ErrNameAlreadyExists] or [ErrEmailAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
}

// ResetTokenRepository persists single-use password reset grants.
// FindResetToken does not look at expiry; callers decide.
type ResetTokenRepository interface {
	SaveResetToken(ctx context.Context, token models.ResetToken) error
	FindResetToken(ctx context.Context, token string) (models.ResetToken, error)
	DeleteResetToken(ctx context.Context, token string) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// URLRepository reads the shortener's URLs for per-user statistics.
type URLRepository interface {
	CountURLsByUser(ctx context.Context, userID string) (int64, error)
	// RecentURLsByUser returns at most limit URLs, newest first.
	RecentURLsByUser(ctx context.Context, userID string, limit int) ([]models.ShortURL, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
