package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime tunables
type Config struct {
	Addr           string
	BaseURL        string
	CommandLatency time.Duration
	PollInterval   time.Duration
	RoomTTL        time.Duration // 0 disables the idle sweep
	SweepInterval  time.Duration
}

// Load reads configuration from the environment, with a .env file picked up
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] .env not loaded: %v", err)
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost" + addr
	}

	return &Config{
		Addr:           addr,
		BaseURL:        baseURL,
		CommandLatency: duration("COMMAND_LATENCY", 100*time.Millisecond),
		PollInterval:   duration("POLL_INTERVAL", 500*time.Millisecond),
		RoomTTL:        duration("ROOM_TTL", 0),
		SweepInterval:  duration("SWEEP_INTERVAL", time.Minute),
	}
}

func duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[Config] invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
