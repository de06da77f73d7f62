package identity

import (
	"context"
	"strings"

	"github.com/teczka-budowlanca/backend/internal/pkg/apperrors"
)

// Identity is the authenticated caller as reported by the identity provider.
// The rest of the application trusts UserID unconditionally.
type Identity struct {
	UserID string
	Email  string
}

// Verifier turns a bearer credential into an Identity. Implementations never
// issue tokens; issuance is the external identity provider's business.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// ExtractBearerToken extracts the token from an Authorization header value.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", apperrors.ErrInvalidFormat
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", apperrors.ErrInvalidFormat
	}
	return token, nil
}
