package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/models"
)

type sqlURLRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLURLRepository constructs a read-only [URLRepository] over the
// shortener's "urls" table.
func NewSQLURLRepository(db *DB, logger *logger.Logger) URLRepository {
	return &sqlURLRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sqlURLRepository) CountURLsByUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountURLsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*sqlURLRepository.CountURLsByUser").Msg("failed to create query")
		return 0, err
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*sqlURLRepository.CountURLsByUser").Str("user_id", userID).Msg("error counting urls")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *sqlURLRepository) RecentURLsByUser(ctx context.Context, userID string, limit int) ([]models.ShortURL, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentURLsQuery(userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*sqlURLRepository.RecentURLsByUser").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlURLRepository.RecentURLsByUser").Str("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	urls := make([]models.ShortURL, 0, limit)
	for rows.Next() {
		var u models.ShortURL
		if err := rows.Scan(&u.ID, &u.UserID, &u.LongURL, &u.ShortURL, &u.Clicks, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*sqlURLRepository.RecentURLsByUser").Msg("failed to scan url row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		urls = append(urls, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return urls, nil
}
