package checks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/pkg/config"
)

func cliente(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.ChecksConfig{BaseURL: srv.URL, APIKey: "clave-test", TimeoutSeconds: 2})
}

func TestValidateRegistration(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/registro/validate", r.URL.Path)
		assert.Equal(t, "clave-test", r.Header.Get("X-Api-Key"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acc-1", body["account_id"])
		json.NewEncoder(w).Encode(map[string]any{"valid": false, "message": "faltan documentos"})
	})

	res, err := c.ValidateRegistration(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.False(t, res.Valid)
	assert.Equal(t, "faltan documentos", res.Message)
}

func TestValidateRegistration_BackendCaido(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	res, err := c.ValidateRegistration(context.Background(), "acc-1")
	require.Error(t, err)
	assert.False(t, res.OK, "OK=false distingue fallo de llamada de registro incompleto")
}

func TestOnboardingCheck(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"provider":        "email",
			"providers":       []string{"email", "google"},
			"email_confirmed": true,
		})
	})

	st, err := c.OnboardingCheck(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, st.OK)
	assert.True(t, st.EmailConfirmed)
	assert.Equal(t, []string{"email", "google"}, st.Providers)
}

func TestValidateCode(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		valid := body["codigo"] == "VEC-A2B3-C4D5"
		json.NewEncoder(w).Encode(map[string]any{"valid": valid, "message": "código expirado"})
	})

	require.NoError(t, c.ValidateCode(context.Background(), "VEC-A2B3-C4D5"))

	err := c.ValidateCode(context.Background(), "VEC-ZZZZ-ZZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodigoInvalido)
	assert.Contains(t, err.Error(), "código expirado")
}
