package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supaconfig/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Host:            "127.0.0.1",
		Port:            "0",
		ShutdownTimeout: defaultTestShutdown,
		SupabaseURL:     "https://x.test",
		SupabaseAnonKey: "key123",
		AllowedOrigins:  []string{"*"},
		LogLevel:        "info",
	}
}

func do(router http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_SupabaseConfig(t *testing.T) {
	router := NewRouter(testConfig())

	for _, path := range []string{"/api/supabase", "/supabase"} {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
			t.Run(method+" "+path, func(t *testing.T) {
				w := do(router, method, path, nil)

				assert.Equal(t, http.StatusOK, w.Code)
				assert.Equal(t, `{"supabaseUrl":"https://x.test","supabaseAnonKey":"key123"}`, w.Body.String())
			})
		}
	}
}

func TestRouter_SupabaseConfigMissing(t *testing.T) {
	cfg := testConfig()
	cfg.SupabaseAnonKey = ""
	router := NewRouter(cfg)

	w := do(router, http.MethodGet, "/api/supabase", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Supabase environment variables are not set."}`, w.Body.String())
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(testConfig())

	for _, path := range []string{"/health", "/api/health"} {
		w := do(router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, serviceName, body["service"])
		assert.Equal(t, Version, body["version"])
	}
}

func TestRouter_Root(t *testing.T) {
	router := NewRouter(testConfig())

	w := do(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/supabase")
}

func TestRequestID(t *testing.T) {
	router := NewRouter(testConfig())

	t.Run("generated when absent", func(t *testing.T) {
		w := do(router, http.MethodGet, "/health", nil)
		assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	})

	t.Run("propagated when present", func(t *testing.T) {
		w := do(router, http.MethodGet, "/health", http.Header{"X-Request-Id": {"abc-123"}})
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestCORS(t *testing.T) {
	t.Run("preflight answered before routing", func(t *testing.T) {
		router := NewRouter(testConfig())

		w := do(router, http.MethodOptions, "/api/supabase", http.Header{"Origin": {"https://app.test"}})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
		assert.Empty(t, w.Body.String())
	})

	t.Run("restricted origins", func(t *testing.T) {
		cfg := testConfig()
		cfg.AllowedOrigins = []string{"https://app.test"}
		router := NewRouter(cfg)

		allowed := do(router, http.MethodGet, "/api/supabase", http.Header{"Origin": {"https://app.test"}})
		assert.Equal(t, "https://app.test", allowed.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", allowed.Header().Get("Vary"))

		denied := do(router, http.MethodGet, "/api/supabase", http.Header{"Origin": {"https://evil.test"}})
		assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, denied.Code)
	})
}

func TestRecoveryIsLogged(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(), gin.Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := do(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
