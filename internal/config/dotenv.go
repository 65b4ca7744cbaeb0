package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env files if present, .env.local taking priority.
// godotenv never overwrites variables already set in the OS environment,
// so real env vars always win. Returns the files actually loaded.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
