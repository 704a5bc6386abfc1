package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultMaxRetries       = 3
	defaultCacheTTL         = 5 * time.Minute
	defaultCacheMaxSize     = 2000
	defaultRateLimitRPS     = 10.0
	defaultRateLimitBurst   = 20
	defaultRefreshThreshold = 5 * time.Minute
	defaultMCPHost          = "127.0.0.1"
	defaultMCPPort          = 8080
)

// Load builds a [Config] from the environment variables documented in spec
// §6, optionally supplemented by a local YAML overlay file named by
// TAIGA_CONFIG_FILE, and returns it validated. The overlay applies only to
// the fields listed on applyYAMLOverlay; every other field comes from the
// environment or its default.
func Load() (*Config, error) {
	cfg := &Config{
		TaigaAPIURL:      os.Getenv("TAIGA_API_URL"),
		TaigaUsername:    os.Getenv("TAIGA_USERNAME"),
		TaigaPassword:    os.Getenv("TAIGA_PASSWORD"),
		TaigaAuthToken:   os.Getenv("TAIGA_AUTH_TOKEN"),
		TaigaTimeout:     durationSecondsEnv("TAIGA_TIMEOUT", defaultTimeout),
		TaigaMaxRetries:  intEnv("TAIGA_MAX_RETRIES", defaultMaxRetries),
		CacheEnabled:     boolEnv("TAIGA_CACHE_ENABLED", true),
		CacheTTL:         durationSecondsEnv("TAIGA_CACHE_TTL", defaultCacheTTL),
		CacheMaxSize:     intEnv("TAIGA_CACHE_MAX_SIZE", defaultCacheMaxSize),
		RateLimitRPS:     floatEnv("TAIGA_RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst:   intEnv("TAIGA_RATE_LIMIT_BURST", defaultRateLimitBurst),
		Transport:        Transport(envOr("MCP_TRANSPORT", string(TransportStdio))),
		MCPHost:          envOr("MCP_HOST", defaultMCPHost),
		MCPPort:          intEnv("MCP_PORT", defaultMCPPort),
		Debug:            boolEnv("MCP_DEBUG", false),
		Env:              Env(envOr("TAIGA_ENV", string(EnvDevelopment))),
		RefreshThreshold: defaultRefreshThreshold,
		YAMLOverlay:      os.Getenv("TAIGA_CONFIG_FILE"),
	}

	if cfg.YAMLOverlay != "" {
		if err := applyYAMLOverlay(cfg, cfg.YAMLOverlay); err != nil {
			return nil, fmt.Errorf("config: overlay %q: %w", cfg.YAMLOverlay, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyYAMLOverlay decodes path and copies from it TaigaAPIURL,
// TaigaUsername, TaigaPassword and TaigaAuthToken when cfg's value is empty,
// and TaigaTimeout and CacheMaxSize when cfg's value still equals the
// default. Other keys in the file are decoded but not applied. A missing
// file is not an error.
func applyYAMLOverlay(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var overlay Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	if cfg.TaigaAPIURL == "" {
		cfg.TaigaAPIURL = overlay.TaigaAPIURL
	}
	if cfg.TaigaUsername == "" {
		cfg.TaigaUsername = overlay.TaigaUsername
	}
	if cfg.TaigaPassword == "" {
		cfg.TaigaPassword = overlay.TaigaPassword
	}
	if cfg.TaigaAuthToken == "" {
		cfg.TaigaAuthToken = overlay.TaigaAuthToken
	}
	if cfg.TaigaTimeout == defaultTimeout && overlay.TaigaTimeout != 0 {
		cfg.TaigaTimeout = overlay.TaigaTimeout
	}
	if cfg.CacheMaxSize == defaultCacheMaxSize && overlay.CacheMaxSize != 0 {
		cfg.CacheMaxSize = overlay.CacheMaxSize
	}
	return nil
}

// Validate checks that cfg contains a coherent set of values, returning a
// joined error listing every validation failure found (teacher idiom:
// errors.Join over an accumulated slice, never fail-fast on the first
// problem).
func Validate(cfg *Config) error {
	var errs []error

	if cfg.TaigaAPIURL == "" {
		errs = append(errs, errors.New("TAIGA_API_URL is required"))
	}

	hasPassword := cfg.TaigaUsername != "" && cfg.TaigaPassword != ""
	hasToken := cfg.TaigaAuthToken != ""
	if !hasPassword && !hasToken {
		errs = append(errs, errors.New("either TAIGA_AUTH_TOKEN or both TAIGA_USERNAME and TAIGA_PASSWORD must be set"))
	}

	if !cfg.Transport.IsValid() {
		errs = append(errs, fmt.Errorf("MCP_TRANSPORT %q is invalid; valid values: stdio, http", cfg.Transport))
	}
	if cfg.Transport == TransportHTTP {
		if cfg.MCPPort <= 0 || cfg.MCPPort > 65535 {
			errs = append(errs, fmt.Errorf("MCP_PORT %d is out of range [1, 65535]", cfg.MCPPort))
		}
	}

	if cfg.TaigaTimeout <= 0 {
		errs = append(errs, errors.New("TAIGA_TIMEOUT must be positive"))
	}
	if cfg.TaigaMaxRetries < 0 {
		errs = append(errs, errors.New("TAIGA_MAX_RETRIES must not be negative"))
	}
	if cfg.CacheEnabled && cfg.CacheMaxSize <= 0 {
		errs = append(errs, errors.New("TAIGA_CACHE_MAX_SIZE must be positive when caching is enabled"))
	}
	if cfg.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("TAIGA_RATE_LIMIT_RPS must be positive"))
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		slog.Warn("unrecognised TAIGA_ENV value, treating as development", "env", cfg.Env)
	}

	return errors.Join(errs...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func durationSecondsEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return time.Duration(secs * float64(time.Second))
}
