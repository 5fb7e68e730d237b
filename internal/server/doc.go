// Package server builds the gin engine and runs it as a standalone server.
//
// Routes:
// - /api/supabase, /supabase: Supabase client configuration (any method)
// - /health, /api/health: health check
// - /, /api: service info
//
// The same engine backs the serverless entry point in api/.
package server
