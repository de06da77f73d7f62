package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier(JWTConfig{SecretKey: testSecret, Issuer: "teczka-auth"})

	tokenString := signToken(t, testSecret, claims{
		Email: "jan@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    "teczka-auth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	id, err := verifier.Verify(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id.UserID)
	assert.Equal(t, "jan@example.com", id.Email)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, testSecret, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := verifier.Verify(context.Background(), tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	verifier := NewJWTVerifier(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, "other-secret", claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(context.Background(), tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTVerifier_WrongIssuer(t *testing.T) {
	verifier := NewJWTVerifier(JWTConfig{SecretKey: testSecret, Issuer: "teczka-auth"})

	tokenString := signToken(t, testSecret, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(context.Background(), tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	verifier := NewJWTVerifier(JWTConfig{SecretKey: testSecret})

	tokenString := signToken(t, testSecret, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(context.Background(), tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name       string
		authHeader string
		expected   string
		expectErr  error
	}{
		{name: "valid header", authHeader: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "missing header", authHeader: "", expectErr: apperrors.ErrUnauthorized},
		{name: "wrong scheme", authHeader: "Basic abc", expectErr: apperrors.ErrInvalidFormat},
		{name: "empty token", authHeader: "Bearer ", expectErr: apperrors.ErrInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.authHeader)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, token)
		})
	}
}
