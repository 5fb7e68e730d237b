package supabase

import "errors"

// MissingConfigMessage is returned to callers when either value is unset.
const MissingConfigMessage = "Supabase environment variables are not set."

// ErrConfigurationMissing reports that the project URL or anon key is empty.
var ErrConfigurationMissing = errors.New(MissingConfigMessage)

// EnvironmentConfig holds the two values a browser needs to create a
// Supabase client.
type EnvironmentConfig struct {
	URL     string
	AnonKey string
}

// Validate returns ErrConfigurationMissing unless both values are non-empty.
func (c EnvironmentConfig) Validate() error {
	if c.URL == "" || c.AnonKey == "" {
		return ErrConfigurationMissing
	}
	return nil
}
