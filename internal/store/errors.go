package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConflict is wrapped by every uniqueness violation.
	ErrConflict = errors.New("unique constraint violated")

	// ErrNameAlreadyExists is returned when another user already has the name.
	ErrNameAlreadyExists = fmt.Errorf("%w: name already exists", ErrConflict)

	// ErrEmailAlreadyExists is returned when another user already has the e-mail.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrConflict)

	// ErrUserNotFound is returned when a lookup matches no user. Identifiers
	// that are malformed for the backend are reported the same way.
	ErrUserNotFound = errors.New("user not found")

	// ErrResetTokenNotFound is returned when no reset record has the token.
	ErrResetTokenNotFound = errors.New("reset token not found")

	// ErrEmptyUpdate is returned when an update carries no fields.
	ErrEmptyUpdate = errors.New("update has no fields")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning or decoding a single record fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-record result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
