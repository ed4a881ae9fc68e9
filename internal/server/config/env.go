package config

import (
	"os"
	"time"
)

// Environment variables recognized by the server.
const (
	envEndpointAddr  = "ADDRESS"
	envDatabaseDSN   = "DATABASE_DSN"
	envSecretKey     = "JWT_SECRET"
	envTokenValidity = "TOKEN_VALIDITY"
)

// parseEnv overlays configuration values from the environment. An
// unparseable TOKEN_VALIDITY is ignored rather than fatal; Validate
// still catches a non-positive result.
func parseEnv(config *Config) {
	if v := os.Getenv(envEndpointAddr); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv(envSecretKey); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(envTokenValidity); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
