package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/config"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify taskman configuration",
	Long: `View or modify taskman configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  taskman config set backend.url https://xyz.supabase.co
  taskman config set tui.theme light
  taskman config set logging.level debug

Valid keys:
  backend.url                 - Base URL of the backend project
  backend.anon_key            - Public API key for the backend
  backend.timeout_seconds     - Per-request timeout in seconds
  tui.theme                   - Color theme (default, light)
  tui.date_format             - Go time layout for due dates
  auth.refresh_window_seconds - Seconds before expiry to refresh the session
  logging.enabled             - Write a debug log file (true/false)
  logging.level               - Log level (debug, info, warn, error)
  logging.file                - Debug log path (empty for the default)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/taskman/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("backend:")
	fmt.Printf("  url: %s\n", cfg.Backend.URL)
	fmt.Printf("  anon_key: %s\n", maskKey(cfg.Backend.AnonKey))
	fmt.Printf("  timeout_seconds: %d\n", cfg.Backend.TimeoutSeconds)

	fmt.Println("tui:")
	fmt.Printf("  theme: %s\n", cfg.TUI.Theme)
	fmt.Printf("  date_format: %s\n", cfg.TUI.DateFormat)

	fmt.Println("auth:")
	fmt.Printf("  refresh_window_seconds: %d\n", cfg.Auth.RefreshWindowSeconds)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)
	fmt.Printf("  file: %s\n", cfg.Logging.LogFile())

	return nil
}

// maskKey hides all but a short prefix of the API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "********"
	}
	return key[:8] + "..."
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"backend.url":                 "string",
		"backend.anon_key":            "string",
		"backend.timeout_seconds":     "int",
		"tui.theme":                   "string",
		"tui.date_format":             "string",
		"auth.refresh_window_seconds": "int",
		"logging.enabled":             "bool",
		"logging.level":               "string",
		"logging.file":                "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'taskman config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "tui.theme" && !styles.IsValidTheme(value) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(styles.ValidThemes(), ", "))
		}
		if key == "logging.level" && !slices.Contains(config.ValidLogLevels(), strings.ToLower(value)) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(config.ValidLogLevels(), ", "))
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set the value in viper
	viper.Set(key, typedValue)

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'taskman config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Generate a commented config file
	configContent := `# Taskman Configuration

# Hosted backend connection. Both values come from your project's
# API settings page.
backend:
  url: ""
  anon_key: ""
  timeout_seconds: 10

# Terminal UI
tui:
  theme: default        # default, light
  date_format: "02.01.2006"

# Session handling
auth:
  refresh_window_seconds: 60

# Debug log (JSON lines, never shown in the UI)
logging:
  enabled: true
  level: info
  file: ""              # empty = <config dir>/debug.log
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println("Edit backend.url and backend.anon_key, then run 'taskman start'.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}
