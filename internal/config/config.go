package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Add positions for new items.
const (
	AddAtEnd    = "end"
	AddAtCursor = "cursor"
)

const (
	defaultTitle       = "TODO-List"
	defaultAddPosition = AddAtEnd
)

// Config holds application configuration.
type Config struct {
	Title       string `mapstructure:"title"`
	SaveDir     string `mapstructure:"save_dir"`
	AddPosition string `mapstructure:"add_position"`
	Autosave    bool   `mapstructure:"autosave"`
	SessionDB   string `mapstructure:"session_db"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
}

func defaultConfig() *Config {
	return &Config{
		Title:       defaultTitle,
		AddPosition: defaultAddPosition,
	}
}

// Dir returns the config directory: $XDG_CONFIG_HOME/todo or ~/.config/todo
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "todo")
}

// Load reads config.yaml (or config.toml) from the config directory.
// Missing files yield defaults.
func Load() (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(Dir())
	v.SetConfigType("yaml")

	v.SetDefault("title", defaultTitle)
	v.SetDefault("add_position", defaultAddPosition)
	v.SetDefault("autosave", false)

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg.normalize(), nil
	}

	// fallback to TOML if yaml missing
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	return cfg.normalize(), nil
}

// normalize fills in derived paths and replaces unknown values with defaults.
func (c *Config) normalize() *Config {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.AddPosition != AddAtEnd && c.AddPosition != AddAtCursor {
		c.AddPosition = defaultAddPosition
	}
	if c.SessionDB == "" {
		c.SessionDB = filepath.Join(Dir(), "session.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(Dir(), "todo.log")
	}
	return c
}
