package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Root == "" {
		errs = append(errs, "library.root: required")
	}

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Library.DebounceSec < 0 {
		errs = append(errs, fmt.Sprintf("library.debounce_sec: must not be negative, got %d", c.Library.DebounceSec))
	}
	if c.Preview.IntervalMs < 0 {
		errs = append(errs, fmt.Sprintf("preview.interval_ms: must not be negative, got %d", c.Preview.IntervalMs))
	}
	if c.Suggest.Threshold < 0 || c.Suggest.Threshold > 1 {
		errs = append(errs, fmt.Sprintf("suggest.threshold: must be between 0 and 1, got %g", c.Suggest.Threshold))
	}
	if c.Events.Retain < 0 {
		errs = append(errs, fmt.Sprintf("events.retain: must not be negative, got %d", c.Events.Retain))
	}

	// Library path warning (non-fatal in spirit, but surfaced the same way)
	if c.Library.Root != "" {
		if _, err := os.Stat(c.Library.Root); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("library.root: warning: directory %q does not exist", c.Library.Root))
		}
	}

	return errs
}
