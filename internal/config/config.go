// Package config loads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/walletscope/spectral/dsp/core"
	"github.com/walletscope/spectral/dsp/filter/design"
)

// Environment keys.
const (
	KeyWindowSize = "SPECTRA_WINDOW_SIZE"
	KeyOverlap    = "SPECTRA_OVERLAP"
	KeySampleRate = "SPECTRA_SAMPLE_RATE"
	KeyOrder      = "SPECTRA_ORDER"
	KeyLogLevel   = "SPECTRA_LOG_LEVEL"
	KeyLogFormat  = "SPECTRA_LOG_FORMAT"
)

// Config holds the CLI defaults. Command-line flags override every field.
type Config struct {
	WindowSize int
	Overlap    int
	SampleRate float64
	Order      int
	LogLevel   string
	// LogFormat is "console" or "json".
	LogFormat string
}

// Load reads configuration from ./.env (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads configuration from dir/.env (if present) and the
// environment. Environment variables take precedence over the file.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyWindowSize, core.DefaultWindowSize)
	v.SetDefault(KeyOverlap, core.DefaultOverlap)
	v.SetDefault(KeySampleRate, 1.0)
	v.SetDefault(KeyOrder, design.DefaultOrder)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}

	v.AutomaticEnv()

	cfg := &Config{
		WindowSize: v.GetInt(KeyWindowSize),
		Overlap:    v.GetInt(KeyOverlap),
		SampleRate: v.GetFloat64(KeySampleRate),
		Order:      v.GetInt(KeyOrder),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that have no later chance to be corrected.
func (c *Config) Validate() error {
	ac := core.ApplyOptions(core.WithWindowSize(c.WindowSize), core.WithOverlap(c.Overlap))
	if err := ac.Validate(); err != nil {
		return err
	}
	if c.SampleRate <= 0 {
		return core.NewValidationError("sample rate", c.SampleRate, "must be > 0")
	}
	if c.Order < 1 {
		return core.NewValidationError("order", c.Order, "must be >= 1")
	}
	return nil
}

// AnalysisOptions converts the config into Welch options.
func (c *Config) AnalysisOptions() []core.Option {
	return []core.Option{
		core.WithWindowSize(c.WindowSize),
		core.WithOverlap(c.Overlap),
		core.WithSampleRate(c.SampleRate),
	}
}
