// Package config loads the command center settings from flags, environment and an optional YAML file.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. COMMAND_CENTER_PORT.
const EnvPrefix = "COMMAND_CENTER"

// Config holds the runtime settings of every command.
type Config struct {
	Port        string        `mapstructure:"port"`
	Fixtures    string        `mapstructure:"fixtures"`
	LogLevel    string        `mapstructure:"log_level"`
	CORSOrigins string        `mapstructure:"cors_origins"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	Metrics     bool          `mapstructure:"metrics"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("fixtures", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:3000,http://localhost:4000,http://127.0.0.1:3000,http://127.0.0.1:4000")
	v.SetDefault("read_timeout", 60*time.Second)
	v.SetDefault("metrics", true)
}

// Load resolves the configuration from v. Flags bound to v win over environment
// variables, which win over the config file at configFile (if any), which wins over defaults.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values that cannot be caught by decoding.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Port)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive, got %s", c.ReadTimeout)
	}
	// Credentialed CORS needs explicit origins; an empty list means "*" to the middleware.
	origins := 0
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		switch strings.TrimSpace(origin) {
		case "":
		case "*":
			return fmt.Errorf("cors_origins must list explicit origins, got %q", c.CORSOrigins)
		default:
			origins++
		}
	}
	if origins == 0 {
		return fmt.Errorf("cors_origins must list at least one origin")
	}
	return nil
}

// ListenAddr is the address passed to the HTTP listener.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
