package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nilesh507/medium/internal/auth"
	"github.com/nilesh507/medium/internal/utils"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Auth is the bearer-token gate for protected routes. A missing or empty
// Authorization header is 401; a header that is present but does not
// verify (wrong scheme, bad signature, expired, empty subject) is 403.
// On failure nothing downstream of the gate runs.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.TrimSpace(header) == "" {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.JSONError(w, http.StatusForbidden, "forbidden")
				return
			}

			token := strings.TrimSpace(parts[1])

			claims, err := auth.VerifyToken(token, secret)
			if err != nil {
				utils.JSONError(w, http.StatusForbidden, "forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the authenticated user id set by Auth. Handlers
// call this once and pass the identity explicitly into the service; the
// service layer never reads the context itself.
func IdentityFrom(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(identityKey).(string)
	return id, ok && id != ""
}
