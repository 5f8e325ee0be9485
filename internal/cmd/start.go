package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/board"
	"github.com/ElizavetaFed/Task-Manager2025/internal/config"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
	"github.com/ElizavetaFed/Task-Manager2025/internal/session"
	"github.com/ElizavetaFed/Task-Manager2025/internal/store"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the task planner",
	Long: `Start the task planner TUI. Requires backend.url and backend.anon_key
to be configured; run 'taskman config init' to create a config file.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Backend.URL == "" || cfg.Backend.AnonKey == "" {
		return fmt.Errorf("backend.url and backend.anon_key must be configured; run 'taskman config init' and edit %s", config.ConfigFile())
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer log.Close()

	styles.Apply(cfg.TUI.Theme)

	client, err := api.NewClient(cfg.Backend.URL, cfg.Backend.AnonKey,
		api.WithTimeout(cfg.Backend.Timeout()),
		api.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	gate := session.NewGate(client, log, cfg.Auth.RefreshWindow())
	remote := store.NewRemote(client, gate, log)
	b := board.New(remote, log)

	// Persist every session change so the user stays signed in across
	// restarts; a nil session clears the cache on sign-out.
	cache := session.NewCache(config.ConfigDir(), log)
	gate.Subscribe(func(sess *api.Session) {
		cache.Save(sess)
	})
	restoreSession(client, gate, cache, cfg)

	// Pick up logging.level edits without a restart.
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.SetLevel(viper.GetString("logging.level"))
		log.Info("config reloaded", "file", e.Name)
	})
	viper.WatchConfig()

	app := tui.New(client, gate, b, cfg, log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// restoreSession re-establishes a cached session, refreshing it first
// when the access token already expired. Any failure just means the
// login screen is shown.
func restoreSession(client *api.Client, gate *session.Gate, cache *session.Cache, cfg *config.Config) {
	cached := cache.Load()
	if cached == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout())
	defer cancel()

	if cached.ExpiresWithin(time.Now(), 0) {
		refreshed, err := client.Refresh(ctx, cached.RefreshToken)
		if err != nil {
			cache.Clear()
			return
		}
		cached = refreshed
	}
	gate.Establish(ctx, cached)
}

// newLogger builds the debug logger, or a no-op logger when the debug
// log is disabled. An empty path must not fall through to stderr, which
// would corrupt the alt screen.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	path := cfg.Logging.LogFile()
	if path == "" {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(path, cfg.Logging.Level)
}
