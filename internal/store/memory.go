package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

// MemoryStorage keeps users, reset tokens and URLs in process memory.
// It implements [UserRepository], [ResetTokenRepository] and [URLRepository]
// and is selected with the "memory" DSN. A single RWMutex guards all maps,
// so uniqueness checks and inserts happen atomically.
type MemoryStorage struct {
	mu          sync.RWMutex
	ids         *utils.UUIDGenerator
	users       map[string]models.User
	resetTokens map[string]models.ResetToken
	urls        []models.ShortURL
}

// NewMemoryStorage returns an empty storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		ids:         utils.NewUUIDGenerator(),
		users:       make(map[string]models.User),
		resetTokens: make(map[string]models.ResetToken),
	}
}

func (m *MemoryStorage) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.uniqueConflict("", &user.Name, &user.Email); err != nil {
		return models.User{}, err
	}

	user.ID = m.ids.Generate()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m.users[user.ID] = user

	return user, nil
}

// uniqueConflict reports which unique field a user other than skipID
// already holds. Email is checked across every record before name. Callers
// hold m.mu.
func (m *MemoryStorage) uniqueConflict(skipID string, name, email *string) error {
	taken := func(field func(models.User) string, value *string) bool {
		if value == nil {
			return false
		}
		for id, other := range m.users {
			if id != skipID && field(other) == *value {
				return true
			}
		}
		return false
	}

	if taken(func(u models.User) string { return u.Email }, email) {
		return ErrEmailAlreadyExists
	}
	if taken(func(u models.User) string { return u.Name }, name) {
		return ErrNameAlreadyExists
	}
	return nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryStorage) FindUserByName(_ context.Context, name string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Name == name })
}

func (m *MemoryStorage) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	return m.findUser(func(u models.User) bool { return u.Email == email })
}

func (m *MemoryStorage) findUser(match func(models.User) bool) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// ListUsers returns users ordered by creation time, ties broken by id.
func (m *MemoryStorage) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (m *MemoryStorage) UpdateUser(_ context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	if update.IsEmpty() {
		return models.UpdateResult{}, ErrEmptyUpdate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}

	if err := m.uniqueConflict(id, update.Name, update.Email); err != nil {
		return models.UpdateResult{}, err
	}

	updated := user
	if update.Name != nil {
		updated.Name = *update.Name
	}
	if update.Email != nil {
		updated.Email = *update.Email
	}
	if update.Phone != nil {
		updated.Phone = *update.Phone
	}
	if update.Password != nil {
		updated.Password = *update.Password
	}

	result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if updated != user {
		m.users[id] = updated
		result.ModifiedCount = 1
	}

	return result, nil
}

func (m *MemoryStorage) DeleteUser(_ context.Context, id string) (models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.users, id)

	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *MemoryStorage) SaveResetToken(_ context.Context, token models.ResetToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetTokens[token.Token] = token
	return nil
}

func (m *MemoryStorage) FindResetToken(_ context.Context, token string) (models.ResetToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	found, ok := m.resetTokens[token]
	if !ok {
		return models.ResetToken{}, ErrResetTokenNotFound
	}
	return found, nil
}

func (m *MemoryStorage) DeleteResetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.resetTokens, token)
	return nil
}

func (m *MemoryStorage) DeleteExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key, token := range m.resetTokens {
		if token.IsExpired(now) {
			delete(m.resetTokens, key)
			deleted++
		}
	}
	return deleted, nil
}

// AddURL records a short URL. The shortener owns URLs; this exists so the
// memory backend can serve statistics in local runs and tests.
func (m *MemoryStorage) AddURL(url models.ShortURL) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if url.ID == "" {
		url.ID = m.ids.Generate()
	}
	m.urls = append(m.urls, url)
}

func (m *MemoryStorage) CountURLsByUser(_ context.Context, userID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, url := range m.urls {
		if url.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MemoryStorage) RecentURLsByUser(_ context.Context, userID string, limit int) ([]models.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := make([]models.ShortURL, 0)
	for _, url := range m.urls {
		if url.UserID == userID {
			owned = append(owned, url)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if limit >= 0 && len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}
