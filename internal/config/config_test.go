package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.TimeoutSeconds != 10 {
		t.Errorf("expected default timeout 10, got %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.TUI.DateFormat != "02.01.2006" {
		t.Errorf("expected default date format 02.01.2006, got %s", cfg.TUI.DateFormat)
	}
	if cfg.Auth.RefreshWindowSeconds != 60 {
		t.Errorf("expected default refresh window 60, got %d", cfg.Auth.RefreshWindowSeconds)
	}
	if !cfg.Logging.Enabled {
		t.Error("expected logging enabled by default")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate cleanly, got: %v", errs)
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)
	SetDefaults()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `backend:
  url: https://example.supabase.co
  anon_key: test-key
  timeout_seconds: 30
tui:
  theme: dark
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend.URL != "https://example.supabase.co" {
		t.Errorf("unexpected backend url: %s", cfg.Backend.URL)
	}
	if cfg.Backend.AnonKey != "test-key" {
		t.Errorf("unexpected anon key: %s", cfg.Backend.AnonKey)
	}
	if cfg.Backend.TimeoutSeconds != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.Backend.TimeoutSeconds)
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.TUI.Theme)
	}
	// Unset keys keep their defaults.
	if cfg.TUI.DateFormat != "02.01.2006" {
		t.Errorf("expected default date format, got %s", cfg.TUI.DateFormat)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("backend.url", "not a url")
	viper.Set("backend.timeout_seconds", -5)
	viper.Set("logging.level", "verbose")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs ValidationErrors
	ok := false
	if v, isV := err.(ValidationErrors); isV {
		verrs = v
		ok = true
	}
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidate_DateFormat(t *testing.T) {
	cfg := Default()
	cfg.TUI.DateFormat = ""

	errs := cfg.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errs))
	}
	if errs[0].Field != "tui.date_format" {
		t.Errorf("expected tui.date_format error, got %s", errs[0].Field)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	dir := ConfigDir()
	if dir != filepath.Join("/tmp/xdg-test", "taskman") {
		t.Errorf("unexpected config dir: %s", dir)
	}

	if !strings.HasSuffix(ConfigFile(), "config.yaml") {
		t.Errorf("unexpected config file: %s", ConfigFile())
	}
}

func TestLogFile(t *testing.T) {
	cfg := Default()

	cfg.Logging.Enabled = false
	if got := cfg.Logging.LogFile(); got != "" {
		t.Errorf("expected empty log file when disabled, got %s", got)
	}

	cfg.Logging.Enabled = true
	cfg.Logging.File = "/tmp/custom.log"
	if got := cfg.Logging.LogFile(); got != "/tmp/custom.log" {
		t.Errorf("expected custom log path, got %s", got)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a.b", Value: 1, Message: "bad"},
		{Field: "c.d", Value: "x", Message: "worse"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("expected error count header, got: %s", msg)
	}
	if !strings.Contains(msg, "a.b") || !strings.Contains(msg, "c.d") {
		t.Errorf("expected both fields in message, got: %s", msg)
	}

	single := ValidationErrors{{Field: "a.b", Value: 1, Message: "bad"}}
	if strings.Contains(single.Error(), "validation errors") {
		t.Errorf("single error should not have a count header: %s", single.Error())
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should produce empty message")
	}
}

func TestValidLogLevels_MatchLogger(t *testing.T) {
	got := ValidLogLevels()
	want := []string{"debug", "info", "warn", "error"}
	if len(got) != len(want) {
		t.Fatalf("ValidLogLevels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ValidLogLevels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
