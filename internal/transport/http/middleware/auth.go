package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-todo-api/internal/domain"
	"github.com/go-todo-api/internal/infrastructure/token"
	"github.com/go-todo-api/internal/transport/http/respond"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID string
	Email  string
}

// devUserID is the placeholder identity substituted when AuthDevFallback is
// enabled. Never active in production.
const devUserID = "dev-user"

type tokenVerifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// Auth resolves the caller's identity and injects it into the request
// context. Resolution order: claims already attached by an upstream
// authorizer win; otherwise the bearer token is verified here. The policy is
// fail-closed — devFallback substitutes a placeholder identity instead and
// must only be set outside production.
func Auth(verifier tokenVerifier, wr *respond.Writer, devFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := resolveBearer(verifier, r)
			if err != nil {
				if devFallback {
					ident = &Identity{UserID: devUserID}
				} else {
					wr.Err(w, r, err)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}

func resolveBearer(verifier tokenVerifier, r *http.Request) (*Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, domain.Unauthorized("missing or invalid authorization header")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == "" {
		return nil, domain.Unauthorized("missing or invalid authorization header")
	}

	claims, err := verifier.Verify(tokenStr)
	if err != nil {
		// Tampered, malformed and expired all read the same to the caller.
		return nil, domain.Unauthorized("invalid or expired token")
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// WithIdentity attaches a resolved identity to the context.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*Identity)
	return ident, ok
}
