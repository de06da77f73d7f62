package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
)

// JWTConfig holds the settings needed to validate provider-signed tokens.
type JWTConfig struct {
	SecretKey string
	Issuer    string
}

// claims mirrors the token payload produced by the identity provider.
// The subject claim carries the user ID.
type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	config JWTConfig
}

// NewJWTVerifier creates a verifier for provider-signed access tokens.
func NewJWTVerifier(config JWTConfig) *JWTVerifier {
	return &JWTVerifier{config: config}
}

// Verify parses and validates the token and returns the caller's identity.
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrTokenInvalid
	}
	if v.config.Issuer != "" && tokenClaims.Issuer != v.config.Issuer {
		return nil, apperrors.ErrTokenInvalid
	}
	if tokenClaims.Subject == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return &Identity{
		UserID: tokenClaims.Subject,
		Email:  tokenClaims.Email,
	}, nil
}
