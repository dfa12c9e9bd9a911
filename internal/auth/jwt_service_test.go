package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	apperrors "userhub/internal/errors"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	s := NewJWTService("test-secret")

	token, err := s.Issue("64f0c1e2a5b4c3d2e1f00001")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f0c1e2a5b4c3d2e1f00001", claims.UserID)
	assert.Equal(t, "64f0c1e2a5b4c3d2e1f00001", claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	s := NewJWTService("")

	_, err := s.Issue("some-id")
	assert.ErrorIs(t, err, apperrors.ErrMissingSecret)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Issue("some-id")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_Malformed(t *testing.T) {
	s := NewJWTService("test-secret")

	_, err := s.Verify("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrMalformedToken)
}

func TestJWTService_Expired(t *testing.T) {
	s := NewJWTService("test-secret")

	// Sign a token whose one-hour window already elapsed.
	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: "some-id",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "some-id",
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}
