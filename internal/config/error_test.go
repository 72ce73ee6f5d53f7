package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/vidkeep/config.toml"}
	assert.Equal(t, "", e.Error())
	assert.False(t, e.HasErrors())
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Missing: []string{"VIDKEEP_DB", "VIDKEEP_ROOT"},
	}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "missing environment variables: VIDKEEP_DB, VIDKEEP_ROOT")
}

func TestConfigError_Error_ValidationErrors(t *testing.T) {
	e := &ConfigError{
		Errors: []string{"library.root: required"},
	}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "validation failed:")
	assert.Contains(t, e.Error(), "  - library.root: required")
}
