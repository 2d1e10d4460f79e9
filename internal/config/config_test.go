// File: internal/config/config_test.go
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Empty(t, cfg.Logger.LogFile)
	assert.Equal(t, 100, cfg.Logger.MaxSize)
	assert.Equal(t, 5, cfg.Logger.MaxBackups)
	assert.Equal(t, 30, cfg.Logger.MaxAge)
	assert.True(t, cfg.Logger.Compress)

	// Paths always come from flags, so the defaults are empty.
	assert.Empty(t, cfg.Strip.Input)
	assert.Empty(t, cfg.Strip.Output)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	// Test Case: Valid Config
	cfg := NewDefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err, "a default config should not produce a validation error")

	// Test Case: Invalid Logger Format
	cfgBadFormat := *cfg
	cfgBadFormat.Logger.Format = "yaml"
	err = cfgBadFormat.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logger.format")

	// Test Case: File sink enabled with a broken rotation size
	cfgBadSize := *cfg
	cfgBadSize.Logger.LogFile = "doxyrm.log"
	cfgBadSize.Logger.MaxSize = 0
	err = cfgBadSize.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "logger.max_size must be a positive integer")

	// Test Case: Unknown level passes; the logger falls back on its own
	cfgOddLevel := *cfg
	cfgOddLevel.Logger.Level = "chatty"
	assert.NoError(t, cfgOddLevel.Validate())
}

func TestNewConfigFromViper(t *testing.T) {
	t.Run("values set on viper reach the config", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("strip.input", "in.cpp")
		v.Set("strip.output", "out.cpp")
		v.Set("logger.level", "debug")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "in.cpp", cfg.Strip.Input)
		assert.Equal(t, "out.cpp", cfg.Strip.Output)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})

	t.Run("defaults alone produce a valid config", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "console", cfg.Logger.Format)
		assert.Empty(t, cfg.Strip.Input)
	})

	t.Run("validation failures are reported", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("logger.format", "yaml")

		cfg, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
