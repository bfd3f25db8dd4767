package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_UsableAt(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name   string
		token  RefreshToken
		usable bool
	}{
		{name: "active", token: RefreshToken{ExpiresAt: now.Add(time.Hour)}, usable: true},
		{name: "expired", token: RefreshToken{ExpiresAt: now.Add(-time.Hour)}, usable: false},
		{name: "revoked", token: RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt}, usable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.token.UsableAt(now))
		})
	}
}

func TestBlacklistedToken_BeforeCreate(t *testing.T) {
	token := BlacklistedToken{JTI: "jti-1", UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, token.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.False(t, token.BlacklistedAt.IsZero())
	assert.False(t, token.ExpiredAt(time.Now()))
	assert.True(t, token.ExpiredAt(token.ExpiresAt))
}
