// Package config loads process configuration from the environment.
//
// Values are read once at startup. Optional .env files seed the environment
// for local development; variables set by the deployment always win.
package config
