// Package supabase exposes the public Supabase client configuration.
//
// The package provides:
// - EnvironmentConfig: the project URL and anon key read at startup
// - ConfigHandler: the endpoint that echoes both values to a browser client
// - Client: a small reachability probe used by deploy tooling
//
// Only the public anon key is served; the service role key never passes
// through this package.
package supabase
