// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
}

func TestUserIDCtxKey(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "6650c1f2a1b2c3d4e5f60718"),
			wantID: "6650c1f2a1b2c3d4e5f60718",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty string",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "userID", "u-1"), //nolint:staticcheck // collision check
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
