package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

// Default values for the server configuration.
const (
	DefaultAddr     = ":443"
	DefaultCertFile = "server.crt"
	DefaultKeyFile  = "server.key"
	DefaultRateRPS  = 1
	DefaultBurst    = 3
)

// Config holds settings parsed from config.yaml. Secrets (TOKEN_KEY,
// DATABASE_URL) stay in the environment and never appear here.
type Config struct {
	Server ServerConfig `yaml:"server"`

	// DefaultStair pre-fills the input form; if absent a conventional
	// 4 m / 180x280 stair is used.
	DefaultStair stair.Input `yaml:"default_stair"`
}

// ServerConfig holds the listener and rate-limit settings.
type ServerConfig struct {
	// Addr is the TLS listen address (default ":443").
	Addr string `yaml:"addr"`

	// CertFile and KeyFile locate the TLS certificate pair.
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`

	// RateRPS and RateBurst feed the per-IP limiter on the public
	// login/register endpoints.
	RateRPS   float64 `yaml:"rate_rps"`
	RateBurst int     `yaml:"rate_burst"`
}

// Load reads the YAML file at path. A missing file is not an error: the
// defaults are returned so the server can run without any config on disk.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      DefaultAddr,
			CertFile:  DefaultCertFile,
			KeyFile:   DefaultKeyFile,
			RateRPS:   DefaultRateRPS,
			RateBurst: DefaultBurst,
		},
		DefaultStair: stair.Input{
			HeightM:         4.0,
			StairWidthMM:    1950,
			RiserMM:         180,
			TreadMM:         280,
			SlabThickMM:     150,
			LandingLengthMM: 4100,
			LandingDepthMM:  1495,
			LandingThickMM:  200,
		},
	}
}

func (c *Config) fillDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.CertFile == "" {
		c.Server.CertFile = DefaultCertFile
	}
	if c.Server.KeyFile == "" {
		c.Server.KeyFile = DefaultKeyFile
	}
	if c.Server.RateRPS <= 0 {
		c.Server.RateRPS = DefaultRateRPS
	}
	if c.Server.RateBurst <= 0 {
		c.Server.RateBurst = DefaultBurst
	}
}

func (c *Config) validate() error {
	if c.Server.RateRPS <= 0 || c.Server.RateBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}
