package middleware

import (
	"context"
	"net/http"

	"blog-post-service/internal/auth"
)

type adminContextKey struct{}

// AdminSession evaluates the session cookie on every request and stores the
// decision in the request context. It never caches: the token is re-verified
// each time.
func AdminSession(secret []byte, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAdmin := false
			if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
				if _, err := auth.VerifyToken(secret, cookie.Value); err == nil {
					isAdmin = true
				}
			}
			ctx := context.WithValue(r.Context(), adminContextKey{}, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin reports the guard decision recorded by AdminSession.
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(adminContextKey{}).(bool)
	return ok && isAdmin
}

// WithAdmin marks a context as authenticated. Test helper.
func WithAdmin(ctx context.Context, isAdmin bool) context.Context {
	return context.WithValue(ctx, adminContextKey{}, isAdmin)
}
