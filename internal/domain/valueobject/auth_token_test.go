package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

const testSecret = "test-secret"

func TestAuthTokenRoundTrip(t *testing.T) {
	token, err := NewAuthToken("user-1", testSecret, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.False(t, token.IsZero())

	userID, err := token.Decode(testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestAuthTokenDefaultExpiry(t *testing.T) {
	token, err := NewAuthToken("user-1", testSecret, time.Time{})
	require.NoError(t, err)

	exp, ok := token.ExpiresAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC().Add(DefaultTokenTTL), exp, time.Minute)
}

func TestAuthTokenExpired(t *testing.T) {
	token, err := NewAuthToken("user-1", testSecret, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)

	_, err = token.Decode(testSecret)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeTokenExpired))
}

func TestAuthTokenWrongSecret(t *testing.T) {
	token, err := NewAuthToken("user-1", testSecret, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	_, err = token.Decode("another-secret")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeTokenInvalid))
}

func TestAuthTokenGarbage(t *testing.T) {
	_, err := AuthTokenFromString("not.a.jwt").Decode(testSecret)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeTokenInvalid))

	_, ok := AuthTokenFromString("not.a.jwt").ExpiresAt()
	assert.False(t, ok)
}

func TestAuthTokenEquals(t *testing.T) {
	a := AuthTokenFromString("abc")
	b := AuthTokenFromString("abc")
	c := AuthTokenFromString("def")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.True(t, AuthToken{}.IsZero())
}
