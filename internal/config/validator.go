package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "backend.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels, lowercased the way
// they appear in config files.
func ValidLogLevels() []string {
	levels := logging.ValidLevels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = strings.ToLower(l)
	}
	return out
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateBackend()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateAuth()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateBackend() []ValidationError {
	var errors []ValidationError

	if c.Backend.URL != "" {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "backend.url",
				Value:   c.Backend.URL,
				Message: "must be an absolute URL (e.g., https://xyz.supabase.co)",
			})
		}
	}

	if c.Backend.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "backend.timeout_seconds",
			Value:   c.Backend.TimeoutSeconds,
			Message: "must be a positive number of seconds",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.DateFormat == "" {
		errors = append(errors, ValidationError{
			Field:   "tui.date_format",
			Value:   c.TUI.DateFormat,
			Message: "must not be empty",
		})
	} else {
		// A layout that cannot re-parse its own reference rendering is broken.
		ref := time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)
		if _, err := time.Parse(c.TUI.DateFormat, ref.Format(c.TUI.DateFormat)); err != nil {
			errors = append(errors, ValidationError{
				Field:   "tui.date_format",
				Value:   c.TUI.DateFormat,
				Message: "is not a valid Go time layout",
			})
		}
	}

	return errors
}

func (c *Config) validateAuth() []ValidationError {
	var errors []ValidationError

	if c.Auth.RefreshWindowSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "auth.refresh_window_seconds",
			Value:   c.Auth.RefreshWindowSeconds,
			Message: "must be zero or positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
