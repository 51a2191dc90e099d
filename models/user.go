package models

import "time"

// User represents an account of the URL shortener.
// Password always holds a bcrypt hash once the record is persisted.
type User struct {
	// ID is the opaque identifier assigned by the storage backend
	// (Mongo ObjectID hex or UUIDv7 for SQL and memory backends).
	ID string `json:"_id"`

	// Name is the unique login name of the user.
	Name string `json:"name"`

	// Email is the unique e-mail address used for password recovery.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// UserUpdate is a partial update of a [User].
// Only non-nil fields are written. Password must already be hashed
// by the time the update reaches a repository.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Password == nil
}

// UpdateResult acknowledges a user update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a user deletion. DeletedCount is zero when
// the user did not exist.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
