package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: "memory"}}, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.Same(t, s.UserRepository, s.ResetTokenRepository)
		assert.NoError(t, s.Close(ctx))
	})

	t.Run("unsupported dsn", func(t *testing.T) {
		_, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: "mysql://localhost/db"}}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN)
	})

	t.Run("close calls backend", func(t *testing.T) {
		closed := false
		s := &Storages{closeFunc: func(context.Context) error {
			closed = true
			return nil
		}}

		require.NoError(t, s.Close(ctx))
		assert.True(t, closed)
	})
}
