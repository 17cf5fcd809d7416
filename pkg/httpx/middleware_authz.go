package httpx

import "net/http"

// Messages written by the role gate.
const (
	MsgNotAuthenticated = "Usuário não autenticado"
	MsgLeaderOnly       = "Apenas líderes podem realizar esta ação"
)

// RequireRole lets the request through only when the identity attached by
// AuthnMiddleware carries exactly the given role. It must run after the
// access gate.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, MsgNotAuthenticated)
				return
			}
			if !claims.HasRole(role) {
				WriteError(w, http.StatusForbidden, MsgLeaderOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
