package services

import (
	"testing"
	"time"

	"stayrooted/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.GenerateToken(UserInfo{UserID: "1", Role: "host"})
	require.NoError(t, err)

	info, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", info.UserID)
	assert.Equal(t, "host", info.Role)
}

func TestParseTokenRejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.ParseToken("")
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingToken))

	_, err = m.ParseToken("not.a.token")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))

	other := NewTokenManager("other-secret", time.Hour)
	token, err := other.GenerateToken(UserInfo{UserID: "1", Role: "host"})
	require.NoError(t, err)
	_, err = m.ParseToken(token)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))
}

func TestParseTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.GenerateToken(UserInfo{UserID: "1", Role: "traveler"})
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Minute).ParseToken(token)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))
}
