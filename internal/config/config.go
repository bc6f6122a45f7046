package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Filter FilterConfig `mapstructure:"filter"`
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
	PopupHeight  int    `mapstructure:"popup_height"`
}

type FilterConfig struct {
	// DateFormat is a Go time layout used for date clause values
	DateFormat    string `mapstructure:"date_format"`
	ConfirmDelete bool   `mapstructure:"confirm_delete"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type ExportConfig struct {
	DefaultFormat string `mapstructure:"default_format"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
			PopupHeight:  6,
		},
		Filter: FilterConfig{
			DateFormat:    "2006/01/02",
			ConfirmDelete: false,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
		Export: ExportConfig{
			DefaultFormat: "json",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaults()
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.mouse_enabled", d.UI.MouseEnabled)
	v.SetDefault("ui.popup_height", d.UI.PopupHeight)
	v.SetDefault("filter.date_format", d.Filter.DateFormat)
	v.SetDefault("filter.confirm_delete", d.Filter.ConfirmDelete)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("export.default_format", d.Export.DefaultFormat)
}

// Load loads configuration from the standard locations.
// A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 1. User config directory
	if configDir, err := GetConfigPath(); err == nil {
		v.AddConfigPath(configDir)
	}

	// 2. Current directory
	v.AddConfigPath(".")

	// 3. Default config directory
	v.AddConfigPath("./config")

	return load(v)
}

// LoadFile loads configuration from an explicit path, which must exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("LAZYFILTER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the UI cannot work with
func (c *Config) Validate() error {
	if c.UI.PopupHeight < 1 {
		return fmt.Errorf("ui.popup_height must be positive, got %d", c.UI.PopupHeight)
	}
	switch c.Export.DefaultFormat {
	case "json", "csv":
	default:
		return fmt.Errorf("export.default_format must be json or csv, got %q", c.Export.DefaultFormat)
	}
	if c.Filter.DateFormat == "" {
		return fmt.Errorf("filter.date_format must not be empty")
	}
	return nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazyfilter"), nil
}
