package casais_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/casais/pkg/casaissdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the probes answer without a token.
func TestHealthEndpoints(t *testing.T) {
	_, baseURL := setupCasaisContainer(t)
	client := casaissdk.NewClient(baseURL)

	live, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks["database"])
}

// TestAccessGateRejectsAnonymous verifies record endpoints need a token.
func TestAccessGateRejectsAnonymous(t *testing.T) {
	_, baseURL := setupCasaisContainer(t)
	client := casaissdk.NewClient(baseURL)

	_, err := client.ListCasais(t.Context(), casaissdk.ListQuery{})
	apiErr := requireAPIError(t, err, http.StatusUnauthorized)
	require.Equal(t, "Token não enviado!", apiErr.Message)

	_, err = client.WithToken("not-a-token").ListCasais(t.Context(), casaissdk.ListQuery{})
	requireAPIError(t, err, http.StatusUnauthorized)
}
