package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/casais/pkg/httpx"
	"github.com/aussiebroadwan/casais/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "s3cr3t"

func signToken(t *testing.T, secret, sub, role string, issued time.Time) string {
	t.Helper()
	signer, err := jwtx.NewSignerHS256([]byte(secret))
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims(sub, "ana", role, "", time.Hour, issued))
	require.NoError(t, err)
	return token
}

func gated(t *testing.T, extra ...httpx.Middleware) http.Handler {
	t.Helper()
	v, err := jwtx.NewVerifierHS256([]byte(testSecret), "")
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"sub": httpx.SubjectFromContext(r.Context())})
	})
	mws := append([]httpx.Middleware{httpx.AuthnMiddleware(v, "/", "/login", "/register", "/swagger/")}, extra...)
	return httpx.Chain(echo, mws...)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorBody {
	t.Helper()
	var body httpx.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Status)
	return body
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	h := gated(t)
	valid := signToken(t, testSecret, "acc-1", jwtx.RoleUser, time.Now())

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		code    int
		msg     string
	}{
		{"missing credential", "/get-casal", nil, http.StatusUnauthorized, httpx.MsgTokenMissing},
		{"empty bearer", "/get-casal", map[string]string{"Authorization": "Bearer "}, http.StatusUnauthorized, httpx.MsgTokenMissing},
		{"garbage token", "/get-casal", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, httpx.MsgTokenInvalid},
		{"foreign secret", "/get-casal", map[string]string{"Authorization": signToken(t, "other", "acc-1", "", time.Now())}, http.StatusUnauthorized, httpx.MsgTokenInvalid},
		{"expired", "/get-casal", map[string]string{"Authorization": signToken(t, testSecret, "acc-1", "", time.Now().Add(-2*time.Hour))}, http.StatusUnauthorized, httpx.MsgTokenInvalid},
		{"bearer prefix", "/get-casal", map[string]string{"Authorization": "Bearer " + valid}, http.StatusOK, ""},
		{"lowercase bearer prefix", "/get-casal", map[string]string{"Authorization": "bearer " + valid}, http.StatusOK, ""},
		{"raw authorization", "/get-casal", map[string]string{"Authorization": valid}, http.StatusOK, ""},
		{"legacy token header", "/get-casal", map[string]string{"token": valid}, http.StatusOK, ""},
		{"public root", "/", nil, http.StatusOK, ""},
		{"public login", "/login", nil, http.StatusOK, ""},
		{"public subtree", "/swagger/index.html", nil, http.StatusOK, ""},
		{"exact match only", "/login/extra", nil, http.StatusUnauthorized, httpx.MsgTokenMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.code, rec.Code)
			if tt.msg != "" {
				require.Equal(t, tt.msg, decodeError(t, rec).ErrorMessage)
			}
		})
	}
}

func TestAuthnMiddlewareAttachesSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "acc-42", "", time.Now()))
	rec := httptest.NewRecorder()
	gated(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"sub":"acc-42"}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	h := gated(t, httpx.RequireRole(jwtx.RoleLeader))

	t.Run("leader passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/eventos", nil)
		req.Header.Set("Authorization", signToken(t, testSecret, "acc-1", jwtx.RoleLeader, time.Now()))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/eventos", nil)
		req.Header.Set("Authorization", signToken(t, testSecret, "acc-1", jwtx.RoleUser, time.Now()))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, httpx.MsgLeaderOnly, decodeError(t, rec).ErrorMessage)
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireRole(jwtx.RoleLeader)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/eventos", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgNotAuthenticated, decodeError(t, rec).ErrorMessage)
	})
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, httpx.BearerToken(req))

	req.Header.Set("token", "legacy")
	require.Equal(t, "legacy", httpx.BearerToken(req))

	req.Header.Set("Authorization", "BEARER  abc ")
	require.Equal(t, "abc", httpx.BearerToken(req), "authorization wins over the legacy header")
}

func TestCORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/add-casal", nil)
		req.Header.Set("Origin", "http://app.local")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		httpx.CORS()(okHandler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Headers"), "Authorization"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		h := httpx.CORS("http://app.local")(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://app.local")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, "http://app.local", rec.Header().Get("Access-Control-Allow-Origin"))

		req.Header.Set("Origin", "http://evil.local")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
