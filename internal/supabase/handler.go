package supabase

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigHandler returns the Supabase URL and anon key as JSON.
// The request itself is never inspected.
func ConfigHandler(cfg EnvironmentConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.Validate(); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: MissingConfigMessage,
			})
			return
		}

		c.JSON(http.StatusOK, ConfigResponse{
			SupabaseURL:     cfg.URL,
			SupabaseAnonKey: cfg.AnonKey,
		})
	}
}
