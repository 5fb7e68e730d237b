package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Ping(t *testing.T) {
	t.Run("healthy project", func(t *testing.T) {
		var gotPath, gotKey, gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("apikey")
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(EnvironmentConfig{URL: srv.URL + "/", AnonKey: "key123"}, srv.Client())
		require.NoError(t, client.Ping(context.Background()))

		assert.Equal(t, "/auth/v1/health", gotPath)
		assert.Equal(t, "key123", gotKey)
		assert.Equal(t, "Bearer key123", gotAuth)
	})

	t.Run("rejected key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
		}))
		defer srv.Close()

		client := NewClient(EnvironmentConfig{URL: srv.URL, AnonKey: "bad"}, srv.Client())
		err := client.Ping(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 401")
		assert.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("missing configuration", func(t *testing.T) {
		client := NewClient(EnvironmentConfig{URL: "https://x.test"}, nil)
		assert.ErrorIs(t, client.Ping(context.Background()), ErrConfigurationMissing)
	})

	t.Run("unreachable project", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := NewClient(EnvironmentConfig{URL: url, AnonKey: "key123"}, nil)
		assert.Error(t, client.Ping(context.Background()))
	})
}
