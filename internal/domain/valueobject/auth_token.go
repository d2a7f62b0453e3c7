package valueobject

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

// DefaultTokenTTL is the session token lifetime when the caller does not
// supply an expiration.
const DefaultTokenTTL = 24 * time.Hour

type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthToken is an opaque, HMAC-signed, time-limited credential binding a
// user ID to an expiration instant. Immutable once created.
type AuthToken struct {
	value string
}

// NewAuthToken creates a token for userID signed with secret. A zero
// expiresAt means now + DefaultTokenTTL.
func NewAuthToken(userID, secret string, expiresAt time.Time) (AuthToken, error) {
	if expiresAt.IsZero() {
		expiresAt = time.Now().UTC().Add(DefaultTokenTTL)
	}
	claims := &tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, apperr.Internal(err)
	}
	return AuthToken{value: signed}, nil
}

// AuthTokenFromString wraps a raw token string received from a client.
// Validity is established only by Decode.
func AuthTokenFromString(raw string) AuthToken {
	return AuthToken{value: raw}
}

// Decode verifies the signature and expiration and returns the embedded
// user ID. Expired tokens yield a TOKEN_EXPIRED error, anything else that
// fails verification a TOKEN_INVALID one.
func (t AuthToken) Decode(secret string) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(t.value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.TokenExpired("token has expired")
		}
		return "", apperr.TokenInvalid("invalid token")
	}
	if !parsed.Valid {
		return "", apperr.TokenInvalid("invalid token")
	}
	return claims.UserID, nil
}

// ExpiresAt returns the expiration instant without verifying the
// signature. Used to size denylist TTLs.
func (t AuthToken) ExpiresAt() (time.Time, bool) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(t.value, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (t AuthToken) String() string { return t.value }

// IsZero reports whether the token carries no value.
func (t AuthToken) IsZero() bool { return t.value == "" }

// Equals compares by raw token value.
func (t AuthToken) Equals(other AuthToken) bool { return t.value == other.value }
