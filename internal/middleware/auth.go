package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/filebox/service/internal/response"
	"github.com/filebox/service/internal/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// AccountIDKey is the context key for the authenticated account's id.
const AccountIDKey contextKey = "accountID"

// TokenKey is the context key for the raw session token, needed by logout.
const TokenKey contextKey = "sessionToken"

// RequireAuth is the access gateway: it resolves the X-Token header against
// the session store and injects the account id into the request context.
// It performs no file logic. A missing or unresolvable token yields 401; a
// session-store outage yields 503, never 401, so callers can tell "not
// authenticated" from "auth subsystem down".
func RequireAuth(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Token")
			if token == "" {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			accountID, err := store.Resolve(r.Context(), token)
			if errors.Is(err, session.ErrNoSession) {
				response.Unauthorized(w, "Unauthorized")
				return
			}
			if err != nil {
				response.FromError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountID extracts the authenticated account id from the request context.
func AccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AccountIDKey).(string)
	return id, ok && id != ""
}

// Token extracts the raw session token from the request context.
func Token(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(TokenKey).(string)
	return t, ok && t != ""
}
