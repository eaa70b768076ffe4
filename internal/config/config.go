/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the dcore-server configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional config
// file (--config, yaml or toml), DCORE_* environment variables, flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DCORE_ADDR.
const EnvPrefix = "DCORE"

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the server configuration.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       FormatJSON,
		MetricsEnabled:  true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// option keys and their flag names
var flagNames = map[string]string{
	"addr":             "addr",
	"log_level":        "log-level",
	"log_format":       "log-format",
	"metrics_enabled":  "metrics",
	"shutdown_timeout": "shutdown-timeout",
}

// Load resolves the configuration from args (without the program name), the
// environment and an optional config file.
func Load(args []string) (*Config, error) {
	def := Default()

	fs := pflag.NewFlagSet("dcore-server", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to a config file (yaml or toml)")
	fs.String("addr", def.Addr, "HTTP listen address")
	fs.String("log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.String("log-format", def.LogFormat, "log format (json, console)")
	fs.Bool("metrics", def.MetricsEnabled, "expose Prometheus metrics on /metrics")
	fs.Duration("shutdown-timeout", def.ShutdownTimeout, "graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetDefault("addr", def.Addr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("metrics_enabled", def.MetricsEnabled)
	v.SetDefault("shutdown_timeout", def.ShutdownTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, name := range flagNames {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("config: addr must not be empty"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("config: unknown log_level %q", c.LogLevel))
	}
	if c.LogFormat != FormatJSON && c.LogFormat != FormatConsole {
		errs = append(errs, fmt.Errorf("config: log_format must be %q or %q, got %q", FormatJSON, FormatConsole, c.LogFormat))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}
