package config

import "os"

// Get returns the environment variable for key, or fallback when unset.
// Mains load .env via godotenv before reading configuration.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
