package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pawtime-dev/pawtime/internal/api"
	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/jwt"
)

// Key to store the resolved identity in the request context
type key int

const identityKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwt jwt.Service
}

func NewAuth(jwtService jwt.Service) *Auth {
	return &Auth{jwt: jwtService}
}

// NeedAuth returns middleware that requires a resolved identity.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that additionally requires the ADMIN role.
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// OptionalAuth populates the identity when a valid credential is present but
// never rejects the request. Read paths stay open to anonymous callers.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity, err := a.extractIdentity(r); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := a.extractIdentity(r)
			if err != nil {
				WriteError(w, err)
				return
			}

			if adminOnly && !identity.IsAdmin() {
				WriteError(w, internal_errors.New(internal_errors.Forbidden, "Access denied. Only for admin"))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractIdentity(r *http.Request) (domain.Identity, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found {
		return domain.Identity{}, internal_errors.New(internal_errors.Unauthenticated, "Missing credential")
	}
	return a.jwt.Authenticate(token)
}

// IdentityFromContext retrieves the identity resolved for this request.
func IdentityFromContext(r *http.Request) (domain.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(domain.Identity)
	return identity, ok
}

// WriteError renders err through the status mapper as a response envelope.
func WriteError(w http.ResponseWriter, err error) {
	code, resp := api.ErrorResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
