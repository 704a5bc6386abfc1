package config_test

import (
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/config"
)

func validBaseConfig() config.Config {
	return config.Config{
		TaigaAPIURL:     "https://taiga.example.com/api/v1",
		TaigaAuthToken:  "tok",
		TaigaTimeout:    30 * time.Second,
		TaigaMaxRetries: 3,
		CacheEnabled:    true,
		CacheMaxSize:    100,
		RateLimitRPS:    10,
		Transport:       config.TransportStdio,
		Env:             config.EnvDevelopment,
	}
}

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"zero timeout", func(c *config.Config) { c.TaigaTimeout = 0 }, true},
		{"negative retries", func(c *config.Config) { c.TaigaMaxRetries = -1 }, true},
		{"non-positive rps", func(c *config.Config) { c.RateLimitRPS = 0 }, true},
		{"http transport bad port", func(c *config.Config) {
			c.Transport = config.TransportHTTP
			c.MCPPort = 70000
		}, true},
		{"http transport good port", func(c *config.Config) {
			c.Transport = config.TransportHTTP
			c.MCPPort = 8080
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(&cfg)
			err := config.Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
