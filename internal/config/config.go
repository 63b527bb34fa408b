package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"

	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
)

// Config holds the runtime configuration for the prediction service.
type Config struct {
	Server struct {
		Port               string   `yaml:"port"`
		ReadTimeoutSec     int      `yaml:"read_timeout_sec"`
		WriteTimeoutSec    int      `yaml:"write_timeout_sec"`
		ShutdownTimeoutSec int      `yaml:"shutdown_timeout_sec"`
		TrustedProxies     []string `yaml:"trusted_proxies"`
	} `yaml:"server"`
	Model struct {
		Path  string `yaml:"path"`
		Watch bool   `yaml:"watch"`
	} `yaml:"model"`
	Cache struct {
		Enabled    bool `yaml:"enabled"`
		TTLSec     int  `yaml:"ttl_sec"`
		MaxEntries int  `yaml:"max_entries"`
	} `yaml:"cache"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeoutSec = 15
	cfg.Server.WriteTimeoutSec = 15
	cfg.Server.ShutdownTimeoutSec = 30
	cfg.Model.Path = "model/breast_cancer_model.json"
	cfg.Model.Watch = true
	cfg.Cache.Enabled = true
	cfg.Cache.TTLSec = 900
	cfg.Cache.MaxEntries = 1024
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 50
	cfg.Log.MaxBackups = 3
	cfg.Log.MaxAgeDays = 14
	return cfg
}

// Load reads the YAML config at path, falling back to defaults when the file
// does not exist. Environment variables override file values so the service
// can be pointed at a different port or artifact without editing the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.WrapError(err, "opening config %s", path)
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, apperrors.WrapError(err, "parsing config %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Model.Path = getEnvOrDefault("MODEL_PATH", c.Model.Path)
	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)
}

// ReadTimeout returns the HTTP read timeout for the server.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the HTTP write timeout for the server.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSec) * time.Second
}

// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSec) * time.Second
}

// CacheTTL returns how long cached prediction responses stay valid.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSec) * time.Second
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
