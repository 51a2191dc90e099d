package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/MKhiriev/go-shortener-users/models"
)

// sqlUserRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account CRUD against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlUserRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewSQLUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation returned by the RETURNING clause.
//
// Error handling:
//   - unique_violation on users_name_key → [ErrNameAlreadyExists].
//   - unique_violation on users_email_key → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	var created models.User
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Password, &created.CreatedAt)
	if err != nil {
		if conflict, ok := userConflict(err); ok {
			return models.User{}, conflict
		}
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *sqlUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *sqlUserRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	return r.findOne(ctx, "name", name)
}

func (r *sqlUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *sqlUserRepository) findOne(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(column, value)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.findOne").Msg("failed to create query")
		return models.User{}, err
	}

	var user models.User
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*sqlUserRepository.findOne").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by creation time.
func (r *sqlUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery("", nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.ListUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of update. Postgres reports a row
// as affected even when the new values equal the old ones, so
// MatchedCount and ModifiedCount are equal.
func (r *sqlUserRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.UpdateUser").Msg("failed to create query")
		return models.UpdateResult{}, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if conflict, ok := userConflict(err); ok {
			return models.UpdateResult{}, conflict
		}
		log.Err(err).Str("func", "*sqlUserRepository.UpdateUser").Str("user_id", id).Msg("error updating user")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.UpdateResult{Acknowledged: true, MatchedCount: affected, ModifiedCount: affected}, nil
}

func (r *sqlUserRepository) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Msg("failed to create query")
		return models.DeleteResult{}, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.DeleteUser").Str("user_id", id).Msg("error deleting user")
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}
