// SPDX-License-Identifier: MIT

// Package config loads graphd settings from defaults, an optional config file,
// GRAPHD_* environment variables and bound command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/graphd/internal/log"
)

// EnvPrefix prefixes every environment override, e.g. GRAPHD_SERVER_ADDRESS.
const EnvPrefix = "graphd"

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Server holds the HTTP listener settings.
type Server struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// CORS lists the origins allowed to call the API.
type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimit configures the token bucket shared by all API requests.
// RPS <= 0 disables limiting.
type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Log selects the log level, the stdout encoding and optional file output.
type Log struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	File     bool   `mapstructure:"file"`
	FileName string `mapstructure:"file_name"`
}

// Metrics toggles the Prometheus collectors and the /metrics route.
type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Graph holds the mode of the graph the engine starts with.
type Graph struct {
	Directed bool `mapstructure:"directed"`
	Weighted bool `mapstructure:"weighted"`
}

// Config is the full graphd configuration, keyed as in the config file.
type Config struct {
	Server    Server    `mapstructure:"server"`
	CORS      CORS      `mapstructure:"cors"`
	RateLimit RateLimit `mapstructure:"ratelimit"`
	Log       Log       `mapstructure:"log"`
	Metrics   Metrics   `mapstructure:"metrics"`
	Graph     Graph     `mapstructure:"graph"`
}

// SetDefaults registers a default for every key, which also makes each key
// visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":5000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.max_upload_bytes", int64(32<<20))
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("ratelimit.rps", 100.0)
	v.SetDefault("ratelimit.burst", 200)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", log.FormatLogfmt)
	v.SetDefault("log.file", false)
	v.SetDefault("log.file_name", "graphd.log")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("graph.directed", false)
	v.SetDefault("graph.weighted", false)
}

// Load reads cfgFile when non-empty, applies environment overrides and
// returns the validated configuration. Flags must already be bound to v.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Server.Address == "":
		return fmt.Errorf("%w: server.address is empty", ErrInvalidConfig)
	case c.Server.ReadTimeout <= 0, c.Server.WriteTimeout <= 0, c.Server.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	case c.Server.MaxUploadBytes <= 0:
		return fmt.Errorf("%w: server.max_upload_bytes must be positive", ErrInvalidConfig)
	case c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1:
		return fmt.Errorf("%w: ratelimit.burst must be at least 1 when ratelimit.rps is set", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Log.Format != log.FormatLogfmt && c.Log.Format != log.FormatJSON {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// LogOpts converts the log section for log.New.
func (c *Config) LogOpts() *log.LogOpts {
	return &log.LogOpts{
		Level:    c.Log.Level,
		Format:   c.Log.Format,
		File:     c.Log.File,
		FileName: c.Log.FileName,
	}
}
