// Package config holds runtime settings for the notekeep server: bind
// address, data directory, JWT secret, and the model runtime location with
// its sampling parameters. Defaults suit local development and every field
// can be overridden from the environment (a .env file is loaded in main).
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	DataDir   string
	JWTSecret string

	ModelBaseURL     string
	ModelLoadTimeout time.Duration
	ModelTimeout     time.Duration
	MaxTokens        int
	Temperature      float64
	TopP             float64
}

// Load builds a Config from defaults overlaid with environment variables.
func Load() *Config {
	cfg := &Config{
		Addr:             ":3002",
		DataDir:          "./data",
		ModelBaseURL:     "http://127.0.0.1:8080",
		ModelLoadTimeout: 10 * time.Minute,
		ModelTimeout:     60 * time.Second,
		MaxTokens:        100,
		Temperature:      0.7,
		TopP:             0.9,
	}

	overlayString(&cfg.Addr, "ADDR")
	overlayString(&cfg.DataDir, "DATA_DIR")
	overlayString(&cfg.JWTSecret, "JWT_SECRET")
	overlayString(&cfg.ModelBaseURL, "MODEL_URL")
	overlayDuration(&cfg.ModelLoadTimeout, "MODEL_LOAD_TIMEOUT")
	overlayDuration(&cfg.ModelTimeout, "MODEL_TIMEOUT")
	overlayInt(&cfg.MaxTokens, "MODEL_MAX_TOKENS")
	overlayFloat(&cfg.Temperature, "MODEL_TEMPERATURE")
	overlayFloat(&cfg.TopP, "MODEL_TOP_P")

	return cfg
}

func overlayString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func overlayInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overlayFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
