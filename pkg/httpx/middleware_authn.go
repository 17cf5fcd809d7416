package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/aussiebroadwan/casais/pkg/slogx"
)

// Messages written by the access gate.
const (
	MsgTokenMissing = "Token não enviado!"
	MsgTokenInvalid = "Usuário não autorizado!"
)

// LegacyTokenHeader is read when Authorization is absent. Older clients sent
// the raw token there.
const LegacyTokenHeader = "token"

// AuthnMiddleware verifies the bearer credential and attaches its claims to
// the request context. Requests whose path is listed in public bypass the
// check. Paths match exactly, except that an entry ending in "/" (other than
// "/" itself) matches the whole subtree below it, like a ServeMux pattern.
func AuthnMiddleware(v jwtx.Verifier, public ...string) Middleware {
	allow := newAllowList(public)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allow.match(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			raw := BearerToken(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, MsgTokenMissing)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(r.Context()).Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, MsgTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// BearerToken extracts the credential from Authorization, falling back to
// the legacy token header. A case-insensitive "Bearer " prefix is optional.
func BearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get(LegacyTokenHeader))
	}

	const prefix = "bearer "
	if strings.EqualFold(raw, strings.TrimSpace(prefix)) {
		return ""
	}
	if len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
		raw = strings.TrimSpace(raw[len(prefix):])
	}
	return raw
}

type allowList struct {
	exact    map[string]struct{}
	subtrees []string
}

func newAllowList(paths []string) allowList {
	a := allowList{exact: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		if p != "/" && strings.HasSuffix(p, "/") {
			a.subtrees = append(a.subtrees, p)
			continue
		}
		a.exact[p] = struct{}{}
	}
	return a
}

func (a allowList) match(path string) bool {
	if _, ok := a.exact[path]; ok {
		return true
	}
	for _, prefix := range a.subtrees {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
