package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vmss-tech/vmss-backend/internal/domain"
	"github.com/vmss-tech/vmss-backend/internal/errors"
	"github.com/vmss-tech/vmss-backend/internal/jwt"
	"github.com/vmss-tech/vmss-backend/internal/utils"
)

// Key to store the verified identity in the request context
type key int

const identityKey key = 0

type Auth struct {
	jwt jwt.Service
}

func NewAuth(jwtService jwt.Service) *Auth {
	return &Auth{jwt: jwtService}
}

// RequireAdmin gates mutation routes: a bearer token must be present,
// verify, and carry the admin role. On any failure the downstream handler
// is never invoked.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.extractIdentity(r)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}

		if identity.Role != domain.RoleAdmin {
			utils.WriteJSONError(w, "Access denied", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) extractIdentity(r *http.Request) (*domain.Identity, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return nil, errors.NewUnauthorized("Authentication required")
	}

	claims, err := a.jwt.DecodeToken(token)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		Id:    claims.UserId,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// GetIdentityFromContext retrieves the verified identity, or nil outside
// a gated route.
func GetIdentityFromContext(r *http.Request) *domain.Identity {
	identity, ok := r.Context().Value(identityKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
