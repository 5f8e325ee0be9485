package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete task manager client configuration
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig describes the hosted backend the client talks to
type BackendConfig struct {
	// URL is the base URL of the backend project (e.g., https://xyz.supabase.co)
	URL string `mapstructure:"url"`
	// AnonKey is the public API key sent with every request
	AnonKey string `mapstructure:"anon_key"`
	// TimeoutSeconds is the per-request HTTP timeout (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme"`
	// DateFormat is the Go layout used to display due dates (default: "02.01.2006")
	DateFormat string `mapstructure:"date_format"`
}

// AuthConfig controls session handling
type AuthConfig struct {
	// RefreshWindowSeconds is how long before access-token expiry a refresh
	// is attempted (default: 60). Zero disables transparent refresh.
	RefreshWindowSeconds int `mapstructure:"refresh_window_seconds"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Enabled turns the debug log file on or off (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: debug, info, warn, error (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path; empty means {ConfigDir}/debug.log
	File string `mapstructure:"file"`
}

// Timeout returns the backend request timeout as a duration.
func (b *BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// RefreshWindow returns the session refresh window as a duration.
func (a *AuthConfig) RefreshWindow() time.Duration {
	return time.Duration(a.RefreshWindowSeconds) * time.Second
}

// LogFile returns the resolved debug log path, or "" when logging is disabled.
func (l *LoggingConfig) LogFile() string {
	if !l.Enabled {
		return ""
	}
	if l.File != "" {
		return l.File
	}
	return filepath.Join(ConfigDir(), "debug.log")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            "",
			AnonKey:        "",
			TimeoutSeconds: 10,
		},
		TUI: TUIConfig{
			Theme:      "default",
			DateFormat: "02.01.2006",
		},
		Auth: AuthConfig{
			RefreshWindowSeconds: 60,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "",
		},
	}
}

// SetDefaults registers default values with viper so they are available
// even when no config file exists.
func SetDefaults() {
	defaults := Default()

	// Backend defaults
	viper.SetDefault("backend.url", defaults.Backend.URL)
	viper.SetDefault("backend.anon_key", defaults.Backend.AnonKey)
	viper.SetDefault("backend.timeout_seconds", defaults.Backend.TimeoutSeconds)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.date_format", defaults.TUI.DateFormat)

	// Auth defaults
	viper.SetDefault("auth.refresh_window_seconds", defaults.Auth.RefreshWindowSeconds)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskman")
	}
	// Fall back to ~/.config/taskman
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskman"
	}
	return filepath.Join(home, ".config", "taskman")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
