package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supaconfig/internal/config"
	"supaconfig/internal/logging"
	"supaconfig/internal/server"
)

var router *gin.Engine

func init() {
	// Vercel injects project environment variables; .env only matters locally
	_ = config.LoadEnvFiles()
	cfg := config.LoadConfig()

	logging.Setup(cfg.LogLevel, true)

	gin.SetMode(gin.ReleaseMode)

	// Create Gin router ONCE per cold start
	router = server.NewRouter(cfg)
}

// Handler is the Vercel serverless function entry point
func Handler(w http.ResponseWriter, r *http.Request) {
	router.ServeHTTP(w, r)
}
