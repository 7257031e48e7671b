package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL         string
	PollInterval   time.Duration
	APIWaitTimeout time.Duration
	StubAPIPort    string
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	pollMS, err := strconv.Atoi(getEnvOrDefault("POLL_INTERVAL_MS", "5000"))
	if err != nil || pollMS <= 0 {
		return Config{}, fmt.Errorf("invalid POLL_INTERVAL_MS")
	}

	waitMS, err := strconv.Atoi(getEnvOrDefault("API_WAIT_TIMEOUT_MS", "15000"))
	if err != nil || waitMS < 0 {
		return Config{}, fmt.Errorf("invalid API_WAIT_TIMEOUT_MS")
	}

	return Config{
		APIURL:         getEnvOrDefault("CALCULATOR_API_URL", "http://localhost:8080"),
		PollInterval:   time.Duration(pollMS) * time.Millisecond,
		APIWaitTimeout: time.Duration(waitMS) * time.Millisecond,
		StubAPIPort:    getEnvOrDefault("STUB_API_PORT", "8080"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
