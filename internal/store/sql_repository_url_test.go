package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLURLRepo(t *testing.T) (*sqlURLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &sqlURLRepository{DB: db, logger: logger.Nop()}, mock
}

func TestSQLCountURLsByUser(t *testing.T) {
	repo, mock := newTestSQLURLRepo(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM urls WHERE user_id = \$1`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountURLsByUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestSQLCountURLsByUser_Error(t *testing.T) {
	repo, mock := newTestSQLURLRepo(t)
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("boom"))

	_, err := repo.CountURLsByUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLRecentURLsByUser(t *testing.T) {
	repo, mock := newTestSQLURLRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM urls WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 5`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "long_url", "short_url", "clicks", "created_at"}).
			AddRow("l-2", "u-1", "https://b.example", "bbb", 2, now).
			AddRow("l-1", "u-1", "https://a.example", "aaa", 9, now.Add(-time.Minute)))

	urls, err := repo.RecentURLsByUser(context.Background(), "u-1", 5)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, "bbb", urls[0].ShortURL)
	assert.Equal(t, int64(9), urls[1].Clicks)
}
