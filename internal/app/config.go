package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/configor"
)

// Config holds runtime options for both binaries. Values come from defaults,
// then the optional config files, then the environment.
type Config struct {
	App    AppConfig
	Client ClientConfig
	Server ServerConfig
}

type AppConfig struct {
	Name     string `default:"heroes"`
	Env      string `default:"production" env:"HEROES_ENV"`
	LogLevel string `env:"HEROES_LOG_LEVEL"`
}

// ClientConfig configures the gateway's transport.
type ClientConfig struct {
	APIURL         string `default:"http://localhost:8080" env:"HEROES_API_URL"`
	TimeoutSeconds int    `default:"10" env:"HEROES_TIMEOUT"`
}

// ServerConfig configures cmd/heroapi.
type ServerConfig struct {
	Port              int    `default:"8080" env:"HEROAPI_PORT"`
	CORSOriginsString string `env:"HEROAPI_CORS_ORIGINS"` // comma-separated
	AccessLog         bool   `env:"HEROAPI_ACCESS_LOG"`
	SeedFile          string `env:"HEROAPI_SEED_FILE"`
}

// LoadConfig reads files (YAML, JSON or TOML; missing ones are skipped) and the
// environment into a Config.
func LoadConfig(files ...string) (*Config, error) {
	var cfg Config
	loader := configor.New(&configor.Config{ENVPrefix: "HEROES", Silent: true})
	if err := loader.Load(&cfg, files...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Client.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("load config: timeout must not be negative, got %d", cfg.Client.TimeoutSeconds)
	}
	return &cfg, nil
}

// Timeout is the per-request deadline of the gateway's HTTP client. Zero means
// no deadline.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CORSOrigins returns the allowed origins as a slice.
func (c ServerConfig) CORSOrigins() []string {
	parts := strings.Split(c.CORSOriginsString, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Addr is the server's listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
