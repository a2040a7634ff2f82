// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev  bool
	Seed bool
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type CommerceConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"` // empty disables redis-backed features
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimitConfig struct {
	LookupPerMinute int `yaml:"lookup_per_minute"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Commerce  CommerceConfig  `yaml:"commerce"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML config file and applies env overrides and
// defaults. A missing file is not an error: the app runs standalone with
// env configuration only, the way the original deployment did.
func LoadConfig(path string, dev, seed bool) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// env overrides
	if v := os.Getenv("PORT"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Server.Port)
	}
	if cfg.Commerce.APIKey == "" {
		cfg.Commerce.APIKey = os.Getenv("RYE_API_KEY")
	}
	if cfg.Commerce.BaseURL == "" {
		cfg.Commerce.BaseURL = os.Getenv("RYE_BASE_URL")
	}

	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Commerce.Timeout <= 0 {
		cfg.Commerce.Timeout = 15 * time.Second
	}
	if cfg.RateLimit.LookupPerMinute <= 0 {
		cfg.RateLimit.LookupPerMinute = 20
	}

	cfg.Runtime.Dev = dev
	cfg.Runtime.Seed = seed
	return &cfg, nil
}
