package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port          string
	DBPath        string
	DBMaxConns    int // sqlite connection pool size
	JWTSecret     string
	Smoothing     float64       // zero-bin replacement for scans; 0 selects machine epsilon
	ScanWorkers   int           // goroutines fanning out over scan centers
	MaxSampleSize int           // maximum angles per stored sample
	RateLimit     int           // requests per client IP per rate window
	RateWindow    time.Duration // sliding window for the rate limiter
}

// Load reads the configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/rsp.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	smoothing := 0.0
	if v := os.Getenv("RSP_SMOOTHING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			smoothing = f
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		DBMaxConns:    envInt("DB_MAX_CONNS", 10),
		JWTSecret:     jwtSecret,
		Smoothing:     smoothing,
		ScanWorkers:   envInt("SCAN_WORKERS", 4),
		MaxSampleSize: 1_000_000,
		RateLimit:     envInt("RATE_LIMIT", 100),
		RateWindow:    time.Duration(envInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

// envInt reads a positive integer from the environment, falling back to def
// when unset or invalid.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
