package supabase

// ConfigResponse is the success body of the config endpoint
type ConfigResponse struct {
	SupabaseURL     string `json:"supabaseUrl"`
	SupabaseAnonKey string `json:"supabaseAnonKey"`
}

// ErrorResponse is the failure body of the config endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}
