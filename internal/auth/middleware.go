package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pushkind/filehub/pkg/logger"
)

// claimsKey is the context key for storing parsed claims.
type claimsKey struct{}

// Middleware returns middleware that authenticates each request.
// The token is read from the session cookie first, then from the
// Authorization header. Requests without a valid token are sent to the auth
// service with 303 See Other.
func Middleware(secret []byte, authServiceURL string) func(http.Handler) http.Handler {
	extractor := NewExtractor(
		FromCookie(CookieName),
		FromBearerToken(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := extractor.Extract(r)
			if !ok {
				http.Redirect(w, r, authServiceURL, http.StatusSeeOther)
				return
			}

			claims, err := ParseToken(secret, raw)
			if err != nil {
				http.Redirect(w, r, authServiceURL, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts parsed claims from the context.
// The second return is false when the middleware did not run.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

// HubExtractor returns a ContextExtractor for use with logger.New.
// Adds "hub_id" to log entries of authenticated requests.
func HubExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if claims, ok := ClaimsFromContext(ctx); ok {
			return slog.Int64("hub_id", claims.HubID), true
		}
		return slog.Attr{}, false
	}
}
