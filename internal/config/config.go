package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by every junbi command.
type Config struct {
	Endpoint     string // base URL of the local model runner
	DefaultModel string // model the assistant config points at
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:     "http://127.0.0.1:11434",
		DefaultModel: "qwen2.5-coder:7b",
	}
}

// Load builds the effective Config: defaults, then a .env file in the
// working directory if present, then process environment overrides.
func Load() *Config {
	godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("JUNBI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("JUNBI_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	return cfg
}
