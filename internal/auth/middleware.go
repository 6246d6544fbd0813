package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/saulo-duarte/question-bank/internal/apperr"
)

type contextKey struct{}

var (
	ErrNotAuthenticated = apperr.Unauthorized("Not authenticated")
	ErrAdminRequired    = apperr.Forbidden("Not enough permissions")
)

// Principal is the caller identity resolved for a single request.
type Principal struct {
	ID      uuid.UUID
	Email   string
	IsAdmin bool
}

type TokenResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*Principal, error)
}

func AuthMiddleware(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				apperr.Respond(w, r, ErrNotAuthenticated)
				return
			}

			principal, err := resolver.ResolvePrincipal(r.Context(), token)
			if err != nil {
				apperr.Respond(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := GetPrincipalFromContext(r.Context())
		if err != nil {
			apperr.Respond(w, r, err)
			return
		}
		if _, err := RequireAdmin(principal); err != nil {
			apperr.Respond(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(p *Principal) (*Principal, error) {
	if p == nil || !p.IsAdmin {
		return nil, ErrAdminRequired
	}
	return p, nil
}

func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

func GetPrincipalFromContext(ctx context.Context) (*Principal, error) {
	p, ok := ctx.Value(contextKey{}).(*Principal)
	if !ok || p == nil {
		return nil, ErrNotAuthenticated
	}
	return p, nil
}
