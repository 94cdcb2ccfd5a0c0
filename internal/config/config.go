package config

import (
	"os"
	"strconv"
	"time"
)

// Config krooster-data (HTTP API) configuration
type Config struct {
	HTTP struct {
		Addr string
	}

	// Upstream webhook backend (owns all persistence)
	API struct {
		BaseURL    string
		Timeout    time.Duration
		RetryCount int
	}

	// Redis read cache; when disabled the service falls back to an
	// in-memory cache so plain `go run` still works.
	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}

	Cache struct {
		TTL time.Duration
	}

	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.API.BaseURL = getEnv("API_BASE_URL", "http://localhost:5678/webhook")
	cfg.API.Timeout = time.Duration(parseInt(getEnv("API_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.API.RetryCount = parseInt(getEnv("API_RETRY_COUNT", "3"), 3)

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Cache.TTL = time.Duration(parseInt(getEnv("CACHE_TTL_SECONDS", "60"), 60)) * time.Second

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
