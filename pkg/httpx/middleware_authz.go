package httpx

import (
	"context"
	"net/http"

	"github.com/ironloft/gymd/pkg/slogx"
)

// RoleChecker re-validates a user's role against the user store. The token's
// role claim can go stale between issuance and use, so protected writes ask
// the store again instead of trusting the claim.
type RoleChecker interface {
	CheckRole(ctx context.Context, username, roleName string) error
}

// RequireRole gates a handler on the named role. The username comes from the
// verified claims injected by AuthnMiddleware, so this must run after it.
func RequireRole(checker RoleChecker, roleName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			username := UsernameFromContext(ctx)
			if username == "" {
				writeBearerError(w, "missing authenticated user")
				return
			}

			if err := checker.CheckRole(ctx, username, roleName); err != nil {
				log.Warn("role check failed", "username", username, "role", roleName)
				writeBearerRoleError(w, roleName)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for an insufficient role.
func writeBearerRoleError(w http.ResponseWriter, roleName string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+roleName+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
