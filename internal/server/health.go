package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "supaconfig"

// Version is stamped at build time with -ldflags "-X supaconfig/internal/server.Version=..."
var Version = "1.0.0"

// HealthCheckHandler provides a simple health check endpoint
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": Version,
	})
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"service": serviceName,
		"version": Version,
		"endpoints": gin.H{
			"health":   "/health",
			"supabase": "/api/supabase",
		},
	})
}
