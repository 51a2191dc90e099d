package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/models"
)

type sqlResetTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLResetTokenRepository constructs a [ResetTokenRepository] over the
// "reset_tokens" table.
func NewSQLResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating sql reset token repository")
	return &sqlResetTokenRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sqlResetTokenRepository) SaveResetToken(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResetTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.SaveResetToken").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.SaveResetToken").Str("user_id", token.UserID).Msg("error saving reset token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sqlResetTokenRepository) FindResetToken(ctx context.Context, token string) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResetTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.FindResetToken").Msg("failed to create query")
		return models.ResetToken{}, err
	}

	var found models.ResetToken
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&found.Token, &found.UserID, &found.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*sqlResetTokenRepository.FindResetToken").Msg("error finding reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func (r *sqlResetTokenRepository) DeleteResetToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteResetTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.DeleteResetToken").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.DeleteResetToken").Msg("error deleting reset token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sqlResetTokenRepository) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredResetTokensQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.DeleteExpiredResetTokens").Msg("failed to create query")
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlResetTokenRepository.DeleteExpiredResetTokens").Msg("error deleting expired reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
