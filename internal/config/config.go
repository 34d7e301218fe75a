package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// HTTP
	ListenAddr string

	// Database
	PostgresDSN string

	// Redis (facet cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FacetCacheTTL time.Duration

	// LLM (CV parsing). Optional: the endpoint is disabled when empty.
	GeminiAPIKey string
	GeminiModel  string

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		ListenAddr:    ":8080",
		RedisAddr:     "localhost:6379",
		RedisDB:       0,
		FacetCacheTTL: 10 * time.Minute,
		GeminiModel:   "gemini-2.5-flash",
		LogLevel:      "info",
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if ttl := os.Getenv("FACET_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid FACET_CACHE_TTL: %w", err)
		}
		cfg.FacetCacheTTL = d
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PostgresDSN == "" {
		return fmt.Errorf("postgres DSN is empty")
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is empty")
	}

	if c.FacetCacheTTL < time.Second {
		return fmt.Errorf("facet cache TTL too small: %v", c.FacetCacheTTL)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}
