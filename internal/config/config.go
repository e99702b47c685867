// Package config loads pbar settings from pbar.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/yarlson/go-progressbar/pkg/progressbar"
)

// Config holds all pbar configuration
type Config struct {
	Bar  BarConfig  `mapstructure:"bar"`
	Demo DemoConfig `mapstructure:"demo"`
	Copy CopyConfig `mapstructure:"copy"`
}

// BarConfig holds progress line appearance and redraw settings
type BarConfig struct {
	Mark           string        `mapstructure:"mark"`
	MinTitleWidth  int           `mapstructure:"min_title_width"`
	RedrawInterval time.Duration `mapstructure:"redraw_interval"`
	DisplayWidth   int           `mapstructure:"display_width"`
	Format         string        `mapstructure:"format"`
	Fields         []string      `mapstructure:"fields"`
}

// DemoConfig holds settings for the simulated run command
type DemoConfig struct {
	Total int64         `mapstructure:"total"`
	Delay time.Duration `mapstructure:"delay"`
}

// CopyConfig holds settings for the copy command
type CopyConfig struct {
	BufferSize int `mapstructure:"buffer_size"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from pbar.yaml in the given directory.
// Without a local file the global config file is used, and without that
// the defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("pbar")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		if global, pathErr := GlobalConfigPath(); pathErr == nil {
			return LoadConfigFromPath(global)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromPath loads configuration from a specific file path
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if err := v.Unmarshal(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	// Bar defaults
	v.SetDefault("bar.mark", DefaultBarMark)
	v.SetDefault("bar.min_title_width", DefaultMinTitleWidth)
	v.SetDefault("bar.redraw_interval", DefaultRedrawInterval)
	v.SetDefault("bar.display_width", DefaultDisplayWidth)
	v.SetDefault("bar.format", "")
	v.SetDefault("bar.fields", []string{})

	// Demo defaults
	v.SetDefault("demo.total", DefaultDemoTotal)
	v.SetDefault("demo.delay", DefaultDemoDelay)

	// Copy defaults
	v.SetDefault("copy.buffer_size", DefaultCopyBufferSize)
}

// Options translates the bar settings into progress bar options.
func (c BarConfig) Options() ([]progressbar.Option, error) {
	var opts []progressbar.Option

	if c.Mark != "" {
		if utf8.RuneCountInString(c.Mark) != 1 {
			return nil, fmt.Errorf("bar.mark must be a single character, got %q", c.Mark)
		}
		mark, _ := utf8.DecodeRuneInString(c.Mark)
		opts = append(opts, progressbar.WithBarMark(mark))
	}
	if c.MinTitleWidth < 0 {
		return nil, errors.New("bar.min_title_width cannot be negative")
	}
	if c.MinTitleWidth > 0 {
		opts = append(opts, progressbar.WithMinTitleWidth(c.MinTitleWidth))
	}
	if c.RedrawInterval < 0 {
		return nil, errors.New("bar.redraw_interval cannot be negative")
	}
	if c.RedrawInterval > 0 {
		opts = append(opts, progressbar.WithRedrawInterval(c.RedrawInterval))
	}
	if c.DisplayWidth > 0 {
		opts = append(opts, progressbar.WithDisplayWidth(c.DisplayWidth))
	}

	if c.Format != "" || len(c.Fields) > 0 {
		if c.Format == "" || len(c.Fields) == 0 {
			return nil, errors.New("bar.format and bar.fields must be set together")
		}
		fields := make([]progressbar.Field, 0, len(c.Fields))
		for _, name := range c.Fields {
			f, err := progressbar.ParseField(name)
			if err != nil {
				return nil, fmt.Errorf("bar.fields: %w", err)
			}
			fields = append(fields, f)
		}
		opts = append(opts, progressbar.WithFormat(c.Format, fields...))
	}

	return opts, nil
}
