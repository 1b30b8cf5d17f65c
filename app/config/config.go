package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime knob. Values come from the environment with
// development defaults, loaded from .env when present.
type Config struct {
	ListenAddr string
	// DataFile is the personnel spreadsheet the thin reader serves from.
	DataFile string
	// StateFile backs the key-value store that stands in for the browser's
	// local storage.
	StateFile string
	// SerialMin/SerialMax bound the numeric window treated as a spreadsheet
	// date serial. Two variants of the legacy reader disagree (1–50000 vs
	// 100–60000), so the window is configurable rather than hardwired.
	SerialMin float64
	SerialMax float64
	// PollInterval is the fallback re-check period for detecting external
	// changes to the state file when file watching misses them.
	PollInterval time.Duration
	JWTSecret    string
}

// Load reads .env (if any) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	return &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		DataFile:     getEnv("DATA_FILE", "data/detail.xlsx"),
		StateFile:    getEnv("STATE_FILE", "data/state.json"),
		SerialMin:    getFloat("SERIAL_MIN", 1),
		SerialMax:    getFloat("SERIAL_MAX", 50000),
		PollInterval: getDuration("POLL_INTERVAL", 2*time.Second),
		JWTSecret:    getEnv("JWT_SECRET", "mil-mang-secret-key"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return d
}
