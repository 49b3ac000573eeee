package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultServerURL is used when neither --server nor API_SERVER_URL is set.
	DefaultServerURL = "http://localhost:3000"

	// DefaultTimeoutSeconds is the per-request deadline when --timeout is absent.
	DefaultTimeoutSeconds = 10
)

// Config holds the resolved settings for one process invocation. It is
// built once at startup and never mutated afterwards; operations receive it
// through the client constructor instead of reading globals.
type Config struct {
	ServerURL      string `mapstructure:"server_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load resolves configuration from command-line flags, environment
// variables and an optional config file. Precedence: flags (when set) over
// environment over config file over defaults.
//
// Expected environment variables:
//   - API_SERVER_URL (optional, overrides the default server URL)
//
// The optional config file is config.yaml in the working directory or
// $HOME/.apifetch.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.apifetch")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("server_url", "API_SERVER_URL")

	if flags != nil {
		if f := flags.Lookup("server"); f != nil {
			v.BindPFlag("server_url", f)
		}
		if f := flags.Lookup("timeout"); f != nil {
			v.BindPFlag("timeout_seconds", f)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.ServerURL == "" {
		return nil, fmt.Errorf("server URL must not be empty")
	}
	if config.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("timeout must be a positive number of seconds, got %d", config.TimeoutSeconds)
	}

	return config, nil
}
