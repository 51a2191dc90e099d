package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "server starting up", err: pgError(pgerrcode.CannotConnectNow, ""), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure, ""), want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected, "")), want: Retryable},
		{name: "bad password", err: pgError(pgerrcode.InvalidPassword, ""), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation, usersNameKey), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestUserConflict(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    error
		wantHit bool
	}{
		{name: "name", err: pgError(pgerrcode.UniqueViolation, usersNameKey), want: ErrNameAlreadyExists, wantHit: true},
		{name: "email", err: pgError(pgerrcode.UniqueViolation, usersEmailKey), want: ErrEmailAlreadyExists, wantHit: true},
		{name: "unknown constraint", err: pgError(pgerrcode.UniqueViolation, "users_pkey"), want: ErrConflict, wantHit: true},
		{name: "other code", err: pgError(pgerrcode.NotNullViolation, usersNameKey)},
		{name: "not postgres", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := userConflict(tt.err)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
