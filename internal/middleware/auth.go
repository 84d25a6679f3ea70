// Package middleware provides HTTP middleware: authentication, request
// logging, CORS and metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/linoMlv/abacus/internal/auth"
	"github.com/linoMlv/abacus/internal/models"
	"github.com/linoMlv/abacus/internal/storage"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// associationKey is the context key for the authenticated association.
const associationKey contextKey = "association"

// AccessTokenCookie is the cookie the login endpoint sets and the auth
// middleware reads. Its value may be the raw token or "Bearer <token>".
const AccessTokenCookie = "access_token"

// GetAssociation extracts the authenticated association from the context.
// Returns nil if the request was not authenticated.
func GetAssociation(ctx context.Context) *models.Association {
	assoc, _ := ctx.Value(associationKey).(*models.Association)
	return assoc
}

// WithAssociation returns a context carrying the authenticated association.
// Exposed for handler tests.
func WithAssociation(ctx context.Context, assoc *models.Association) context.Context {
	return context.WithValue(ctx, associationKey, assoc)
}

// ExtractToken pulls the bearer token from the request. The Authorization
// header wins; otherwise the access_token cookie is used, stripping an
// optional "Bearer " prefix. Returns auth.ErrMissingToken when neither is
// present.
func ExtractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1], nil
		}
		return "", auth.ErrInvalidToken
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		token := cookie.Value
		if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimPrefix(token, "Bearer ")
		}
		return token, nil
	}

	return "", auth.ErrMissingToken
}

// ErrorWriter writes an error response with the given status code.
// It lets the API package keep control of the response body shape.
type ErrorWriter func(w http.ResponseWriter, status int, detail string)

// RequireAuth validates the bearer token, resolves the association named by
// its subject and stores it in the request context. Requests without a token
// get 401 "not authenticated"; requests whose token is invalid, expired or
// names an unknown association get 401 "could not validate credentials".
func RequireAuth(jwtManager *auth.JWTManager, store storage.Store, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractToken(r)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}

			subject, err := jwtManager.Validate(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
				return
			}

			// The token subject is the association name, not its id.
			assoc, err := store.GetAssociationByName(r.Context(), subject)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
				return
			}

			ctx := WithAssociation(r.Context(), assoc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
