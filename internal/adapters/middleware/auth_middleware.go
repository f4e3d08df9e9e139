package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type AuthMiddleware struct {
	tokens ports.TokenService
}

func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the verified identity attached by the auth
// gates. Handlers must use this, never an identity field from the request.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// RequireUser verifies the bearer token and attaches the identity to the
// request context. A missing header is 401; a token that is present but
// fails verification is 403.
func (m *AuthMiddleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.verify(w, r)
		if !ok {
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

// RequireAdmin is the same verification path with the additional role
// check. A valid user token on an admin route is 403, distinct from the
// invalid-token failure.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.verify(w, r)
		if !ok {
			return
		}
		if identity.Role != domain.RoleAdmin {
			log.Printf("auth: role %q denied on admin route %s", identity.Role, r.URL.Path)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r.WithContext(withIdentity(r.Context(), identity)))
	}
}

func (m *AuthMiddleware) verify(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, domain.ErrMissingCredential.Error(), http.StatusUnauthorized)
		return domain.Identity{}, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "invalid authorization header", http.StatusUnauthorized)
		return domain.Identity{}, false
	}

	identity, err := m.tokens.Verify(parts[1])
	if err != nil {
		log.Printf("auth: token rejected: %v", err)
		http.Error(w, domain.ErrInvalidToken.Error(), http.StatusForbidden)
		return domain.Identity{}, false
	}

	return identity, true
}

func withIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
