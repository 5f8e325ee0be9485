// Package tui implements the terminal interface: a login screen, the
// task board, and the edit form, driven by a Bubbletea event loop.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/board"
	"github.com/ElizavetaFed/Task-Manager2025/internal/config"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
	"github.com/ElizavetaFed/Task-Manager2025/internal/session"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	gate    *session.Gate
}

// New creates a new TUI application.
func New(client *api.Client, gate *session.Gate, b *board.Board, cfg *config.Config, log *logging.Logger) *App {
	return &App{
		model: NewModel(client, gate, b, cfg, log),
		gate:  gate,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward session changes from the gate into the event loop.
	subID := a.gate.Subscribe(func(sess *api.Session) {
		a.program.Send(msg.SessionChangedMsg{Session: sess})
	})
	defer a.gate.Unsubscribe(subID)

	// Preserve a clean terminal when the process is terminated.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
