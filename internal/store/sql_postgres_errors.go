package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraints declared by the users migration.
const (
	usersNameKey  = "users_name_key"
	usersEmailKey = "users_email_key"
)

// ErrorClassification tells the connect loop whether a failed call is worth
// repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] using SQLSTATE
// codes. Only codes that a freshly starting or restarting server emits are
// retryable: connection exceptions (class 08), rollbacks caused by
// concurrency (class 40) and "the database system is starting up" (57P03).
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return Retryable
	}
	return NonRetryable
}

// postgresError returns the SQLSTATE of err, or "" for non-Postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// userConflict translates a unique_violation on the users table into the
// store's conflict sentinels. ok is false for any other error.
func userConflict(err error) (conflict error, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, false
	}

	switch pgErr.ConstraintName {
	case usersEmailKey:
		return ErrEmailAlreadyExists, true
	case usersNameKey:
		return ErrNameAlreadyExists, true
	default:
		return ErrConflict, true
	}
}
