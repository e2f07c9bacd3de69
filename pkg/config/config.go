package config

import (
	"fmt"
	"time"
)

// Config is the full application configuration. Values come from struct
// defaults overridden by environment variables (see loader.go).
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Asana   AsanaConfig   `koanf:"asana"`
	Runtime RuntimeConfig `koanf:"runtime"`
}

// ServerConfig controls the inbound HTTP listener.
type ServerConfig struct {
	Host    string        `koanf:"host"    env:"SERVER_HOST"`
	Port    int           `koanf:"port"    env:"SERVER_PORT"    validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" env:"SERVER_TIMEOUT"`
}

// AsanaConfig holds the outbound API settings. Token and project are not
// validated at startup: a missing token simply makes every task creation
// fail with an authorization error from Asana.
type AsanaConfig struct {
	BaseURL   string          `koanf:"base_url"   env:"ASANA_BASE_URL"   validate:"omitempty,url"`
	Token     SensitiveString `koanf:"token"      env:"ASANA_TOKEN"      sensitive:"true"`
	ProjectID string          `koanf:"project_id" env:"ASANA_PROJECT_ID"`
	Timeout   time.Duration   `koanf:"timeout"    env:"ASANA_TIMEOUT"`
}

// RuntimeConfig holds process-level settings.
type RuntimeConfig struct {
	LogLevel string `koanf:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in configuration before env overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    5000,
			Timeout: 15 * time.Second,
		},
		Asana: AsanaConfig{
			BaseURL: "https://app.asana.com",
			Timeout: 30 * time.Second,
		},
		Runtime: RuntimeConfig{
			LogLevel: "info",
		},
	}
}

// FullAddress returns the host:port pair for the HTTP listener.
func (s *ServerConfig) FullAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SensitiveString is a string whose value must never appear in logs or
// serialized output.
type SensitiveString string

func (s SensitiveString) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

func (s SensitiveString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Value exposes the raw secret for places that actually need it.
func (s SensitiveString) Value() string {
	return string(s)
}
