package server

import (
	"github.com/gin-gonic/gin"

	"supaconfig/internal/config"
	"supaconfig/internal/supabase"
)

// NewRouter builds the engine for the given configuration. The caller picks
// the gin mode before calling it.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), Logger(), gin.Recovery(), CORS(cfg.AllowedOrigins))

	configHandler := supabase.ConfigHandler(cfg.Supabase())
	router.Any("/api/supabase", configHandler)
	router.Any("/supabase", configHandler)

	router.GET("/health", HealthCheckHandler)
	router.GET("/api/health", HealthCheckHandler)

	router.GET("/", rootHandler)
	router.GET("/api", rootHandler)

	return router
}
