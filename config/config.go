package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config collects every environment-driven knob in one place so main.go
// never touches os.Getenv directly.
type Config struct {
	Port      string
	GinMode   string
	JWTSecret string
	DB        DBConfig
}

type DBConfig struct {
	// Driver is "sqlite" (default, in-memory) or "mysql".
	Driver string
	DSN    string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", ""),
		JWTSecret: getEnv("JWT_SECRET", ""),
		DB: DBConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    getEnv("DB_DSN", "file::memory:?cache=shared"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
