// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shortener-users/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns       = []string{"id", "name", "email", "phone", "password", "created_at"}
	resetTokenColumns = []string{"token", "user_id", "expires_at"}
	urlColumns        = []string{"id", "user_id", "long_url", "short_url", "clicks", "created_at"}
)

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Phone, user.Password, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectUserQuery selects users, optionally filtered by a single
// column equality. An empty column selects everyone, oldest first.
func buildSelectUserQuery(column string, value any) (string, []any, error) {
	builder := psql.Select(userColumns...).From("users")
	if column != "" {
		builder = builder.Where(sq.Eq{column: value})
	} else {
		builder = builder.OrderBy("created_at ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateUserQuery writes only the non-nil fields of update.
func buildUpdateUserQuery(id string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, ErrEmptyUpdate)
	}

	builder := psql.Update("users").Where(sq.Eq{"id": id})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Password != nil {
		builder = builder.Set("password", *update.Password)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserQuery(id string) (string, []any, error) {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertResetTokenQuery(token models.ResetToken) (string, []any, error) {
	query, args, err := psql.Insert("reset_tokens").
		Columns(resetTokenColumns...).
		Values(token.Token, token.UserID, token.ExpiresAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectResetTokenQuery(token string) (string, []any, error) {
	query, args, err := psql.Select(resetTokenColumns...).
		From("reset_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteResetTokenQuery(token string) (string, []any, error) {
	query, args, err := psql.Delete("reset_tokens").Where(sq.Eq{"token": token}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredResetTokensQuery(now time.Time) (string, []any, error) {
	query, args, err := psql.Delete("reset_tokens").Where(sq.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountURLsQuery(userID string) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From("urls").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRecentURLsQuery(userID string, limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, fmt.Errorf("%w: limit must be positive", ErrBuildingSQLQuery)
	}

	query, args, err := psql.Select(urlColumns...).
		From("urls").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
