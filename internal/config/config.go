// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Library  LibraryConfig  `toml:"library"`
	Preview  PreviewConfig  `toml:"preview"`
	Suggest  SuggestConfig  `toml:"suggest"`
	Events   EventsConfig   `toml:"events"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LibraryConfig struct {
	Root        string `toml:"root"`
	DebounceSec int    `toml:"debounce_sec"`
}

type PreviewConfig struct {
	IntervalMs int `toml:"interval_ms"`
}

type SuggestConfig struct {
	Threshold float64 `toml:"threshold"`
}

type EventsConfig struct {
	Retain int `toml:"retain"`
}

// Load reads and parses the configuration file. Unresolved ${VAR}
// references and validation failures are aggregated into a *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8380
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/vidkeep.db"
	}
	if c.Library.DebounceSec == 0 {
		c.Library.DebounceSec = 2
	}
	if c.Preview.IntervalMs == 0 {
		c.Preview.IntervalMs = 800
	}
	if c.Suggest.Threshold == 0 {
		c.Suggest.Threshold = 0.4
	}
	if c.Events.Retain == 0 {
		c.Events.Retain = 1000
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names that could not be resolved.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		missing = append(missing, varName)
		return match
	})
	return out, missing
}
