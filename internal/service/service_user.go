package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/store"
	"github.com/MKhiriev/go-shortener-users/models"
)

// recentURLsLimit is how many URLs the stats endpoint returns.
const recentURLsLimit = 5

type userService struct {
	userRepository store.UserRepository
	urlRepository  store.URLRepository

	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, urlRepository store.URLRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		urlRepository:    urlRepository,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Get returns store.ErrUserNotFound when there is no user with id.
func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("user_id", id).Msg("error finding user")
		}
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

// Update applies a partial update. A new password is validated and hashed
// before it reaches the repository.
func (s *userService) Update(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.UpdateResult{}, ErrInvalidDataProvided
	}
	if (update.Name != nil && *update.Name == "") || (update.Email != nil && *update.Email == "") {
		return models.UpdateResult{}, ErrInvalidDataProvided
	}

	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return models.UpdateResult{}, err
		}
		hash, err := hashPassword(*update.Password, s.passwordHashCost)
		if err != nil {
			log.Err(err).Str("user_id", id).Msg("error hashing password")
			return models.UpdateResult{}, err
		}
		update.Password = &hash
	}

	result, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("error updating user")
		return models.UpdateResult{}, fmt.Errorf("error updating user: %w", err)
	}

	return result, nil
}

func (s *userService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	result, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", id).Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("error deleting user: %w", err)
	}
	return result, nil
}

// Stats returns the number of URLs owned by userID and the latest few of
// them, oldest first.
func (s *userService) Stats(ctx context.Context, userID string) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	total, err := s.urlRepository.CountURLsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error counting urls")
		return models.UserStats{}, fmt.Errorf("error counting urls: %w", err)
	}

	recent, err := s.urlRepository.RecentURLsByUser(ctx, userID, recentURLsLimit)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error loading recent urls")
		return models.UserStats{}, fmt.Errorf("error loading recent urls: %w", err)
	}
	if recent == nil {
		recent = []models.ShortURL{}
	}
	slices.Reverse(recent)

	return models.UserStats{TotalURLs: total, Recent: recent}, nil
}
