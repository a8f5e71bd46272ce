package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultLogLevel  = "info"
	defaultRateLimit = 20.0
)

type Config struct {
	Addr      string
	LogLevel  string
	StaticDir string
	// RateLimit is the per-client request rate in requests per second.
	// Zero disables limiting.
	RateLimit float64
}

func Load() Config {
	addr := os.Getenv("RESOLVER_ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	level := strings.TrimSpace(os.Getenv("RESOLVER_LOG_LEVEL"))
	if level == "" {
		level = defaultLogLevel
	}

	staticDir := strings.TrimSpace(os.Getenv("RESOLVER_STATIC_DIR"))
	if staticDir != "" {
		staticDir = filepath.Clean(staticDir)
	}

	return Config{
		Addr:      addr,
		StaticDir: staticDir,
		LogLevel:  strings.ToLower(level),
		RateLimit: parseRate(os.Getenv("RESOLVER_RATE_LIMIT")),
	}
}

func parseRate(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultRateLimit
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return defaultRateLimit
	}
	return v
}
