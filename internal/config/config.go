// Package config loads and validates the immutable process configuration
// described in spec §3/§6: upstream URL, credentials, transport selection,
// and cache/rate-limit knobs. It is built once at startup via [Load] and
// never mutated afterwards.
package config

import "time"

// Transport selects how the MCP server exposes itself to clients.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// IsValid reports whether t is a recognised transport value.
func (t Transport) IsValid() bool {
	switch t {
	case TransportStdio, TransportHTTP:
		return true
	default:
		return false
	}
}

// Env names the deployment environment. Production masks error detail and
// stack traces from client-visible errors (spec §7).
type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
)

// Config is the immutable bundle built once at process start (spec §3
// "Config"). The zero value is not valid; use [Load].
type Config struct {
	// TaigaAPIURL is the upstream Taiga deployment base URL. Required.
	TaigaAPIURL string `yaml:"taiga_api_url"`

	// Credentials: either Username/Password, or a pre-issued AuthToken that
	// bypasses password auth entirely.
	TaigaUsername  string `yaml:"taiga_username"`
	TaigaPassword  string `yaml:"taiga_password"`
	TaigaAuthToken string `yaml:"taiga_auth_token"`

	// TaigaTimeout bounds a single upstream request.
	TaigaTimeout time.Duration `yaml:"taiga_timeout"`

	// TaigaMaxRetries caps retry attempts for transient upstream failures.
	TaigaMaxRetries int `yaml:"taiga_max_retries"`

	// Cache subsystem (spec §4.5/§4.6).
	CacheEnabled bool          `yaml:"cache_enabled"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheMaxSize int           `yaml:"cache_max_size"`

	// Rate limiting (spec §4.2 item 2).
	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`

	// MCP transport.
	Transport Transport `yaml:"mcp_transport"`
	MCPHost   string    `yaml:"mcp_host"`
	MCPPort   int        `yaml:"mcp_port"`

	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`

	// Env selects the deployment environment.
	Env Env `yaml:"env"`

	// RefreshThreshold is the wall-clock margin before token expiry at which
	// a proactive refresh is triggered (spec §4.3, default 5 minutes).
	RefreshThreshold time.Duration `yaml:"-"`

	// YAMLOverlay, when non-empty, names a local YAML file whose values
	// supplement (never override an explicitly-set env var) the
	// environment-sourced configuration. Optional, local-dev only.
	YAMLOverlay string `yaml:"-"`
}

// Masked reports whether the configured environment wants secrets and stack
// traces hidden from client-visible errors (spec §7).
func (c Config) Masked() bool {
	return c.Env == EnvProduction
}

// Secrets returns the literal substrings that must never appear in an
// emitted log record (spec §8 "No secret in logs").
func (c Config) Secrets() []string {
	var s []string
	if c.TaigaPassword != "" {
		s = append(s, c.TaigaPassword)
	}
	if c.TaigaAuthToken != "" {
		s = append(s, c.TaigaAuthToken)
	}
	return s
}
