package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-shortener-users/internal/config"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
)

// Storages bundles the repositories of one backend.
type Storages struct {
	UserRepository       UserRepository
	ResetTokenRepository ResetTokenRepository
	URLRepository        URLRepository

	closeFunc func(ctx context.Context) error
}

// NewStorages connects to the backend selected by the DSN scheme:
// mongodb:// and mongodb+srv:// use MongoDB, postgres:// and postgresql://
// use PostgreSQL, and "memory" keeps everything in process.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := cfg.DB.DSN

	switch {
	case dsn == "memory":
		log.Info().Str("func", "store.NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(NewMemoryStorage()), nil

	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		db, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository:       NewMongoUserRepository(db, log),
			ResetTokenRepository: NewMongoResetTokenRepository(db, log),
			URLRepository:        NewMongoURLRepository(db, log),
			closeFunc:            db.Close,
		}, nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository:       NewSQLUserRepository(db, log),
			ResetTokenRepository: NewSQLResetTokenRepository(db, log),
			URLRepository:        NewSQLURLRepository(db, log),
			closeFunc: func(context.Context) error {
				return db.Close()
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// NewMemoryStorages wires every repository to the same memory storage.
func NewMemoryStorages(m *MemoryStorage) *Storages {
	return &Storages{
		UserRepository:       m,
		ResetTokenRepository: m,
		URLRepository:        m,
	}
}

// Close releases the backend connection. It is a no-op for memory storage.
func (s *Storages) Close(ctx context.Context) error {
	if s.closeFunc == nil {
		return nil
	}
	return s.closeFunc(ctx)
}
