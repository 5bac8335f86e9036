package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ConstantConfigFilename = ".env"

	DefaultEndpoint   = "http://localhost:8000/analyze"
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DefaultPalette    = "widget"
)

type Config struct {
	Endpoint   string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	LogLevel   string
	LogFormat  string
	Theme      string
	Palette    string
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint %q: scheme should be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint %q: missing host", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout should be positive")
	}
	if c.Retries <= 0 {
		return errors.New("retries should be at least 1")
	}
	if c.RetryDelay < 0 {
		return errors.New("retry delay should not be negative")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log format %q: should be json or console", c.LogFormat)
	}
	return nil
}

// Load reads the optional dotenv file then the CHATCHART_* variables.
// Variables already set in the environment win over the file.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		Endpoint:   getEnv("CHATCHART_ENDPOINT", DefaultEndpoint),
		Timeout:    getEnvDuration("CHATCHART_TIMEOUT", DefaultTimeout),
		Retries:    getEnvInt("CHATCHART_RETRIES", DefaultRetries),
		RetryDelay: getEnvDuration("CHATCHART_RETRY_DELAY", DefaultRetryDelay),
		LogLevel:   getEnv("CHATCHART_LOG_LEVEL", DefaultLogLevel),
		LogFormat:  strings.ToLower(getEnv("CHATCHART_LOG_FORMAT", DefaultLogFormat)),
		Theme:      getEnv("CHATCHART_THEME", ""),
		Palette:    getEnv("CHATCHART_PALETTE", DefaultPalette),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvDuration accepts a Go duration (1m30s) or a plain number of
// seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if i, err := strconv.Atoi(value); err == nil {
		return time.Duration(i) * time.Second
	}
	return fallback
}
