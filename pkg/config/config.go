package config

import (
	"fmt"
	"os"
	"time"

	xutil "RegimeEye/pkg/util"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8000"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Database struct {
		URL          string        `yaml:"url"`
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port" default:"9000"`
		Name         string        `yaml:"name" default:"regimeeye"`
		User         string        `yaml:"user" default:"default"`
		Password     string        `yaml:"password"`
		DialTimeout  time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"3s"`
	} `yaml:"database"`
	Cache struct {
		Enabled     bool          `yaml:"enabled" default:"true"`
		RedisAddr   string        `yaml:"redis_addr"`
		Password    string        `yaml:"password"`
		DB          int           `yaml:"db"`
		Prefix      string        `yaml:"prefix" default:"regimeeye"`
		BacktestTTL time.Duration `yaml:"backtest_ttl" default:"5m"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file. A missing file is not an
// error: the service runs on defaults plus environment overrides.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = xutil.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Cache.Enabled && c.Cache.BacktestTTL <= 0 {
		return fmt.Errorf("cache.backtest_ttl must be positive")
	}
	return nil
}

// DatabaseConfigured reports whether a ClickHouse target is set at all.
// The service is expected to run without one.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.URL != "" || c.Database.Host != ""
}
