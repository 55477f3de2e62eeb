package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort         = "5050"
	DefaultDatasetURL   = "https://raw.githubusercontent.com/csjohnson23/BMI_706/main/Post-COVID_Conditions.csv"
	DefaultRateLimitRPS = 10.0
	DefaultRateBurst    = 20
)

// Config holds process configuration for the dashboard server.
type Config struct {
	Port string

	DatasetURL    string
	ShortNamesURL string
	FetchTimeout  time.Duration

	AllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int

	Options Options
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - DATASET_URL: survey CSV location
//   - SHORTNAMES_URL: indicator short-name table (optional; unset skips the join)
//   - FETCH_TIMEOUT: Go duration bounding the dataset download (default: no timeout)
//   - ALLOWED_ORIGINS: comma separated CORS allow-list
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST: token bucket for /api routes
//   - DASHBOARD_OPTIONS: path to a YAML widget options file
func LoadFromEnv() (Config, error) {
	cfg := Config{
		Port:           envOr("PORT", DefaultPort),
		DatasetURL:     envOr("DATASET_URL", DefaultDatasetURL),
		ShortNamesURL:  strings.TrimSpace(os.Getenv("SHORTNAMES_URL")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateBurst,
	}

	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = f
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = n
	}

	opts, err := LoadOptions(strings.TrimSpace(os.Getenv("DASHBOARD_OPTIONS")))
	if err != nil {
		return Config{}, err
	}
	cfg.Options = opts

	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
