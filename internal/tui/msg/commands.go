// Package msg defines the Bubbletea message types exchanged by the TUI
// and the command factories that produce them.
//
// The factories wrap every network round-trip in a tea.Cmd so the UI
// event loop never blocks on I/O.
package msg

import (
	"context"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/board"
	"github.com/ElizavetaFed/Task-Manager2025/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Tick returns a command that sends a TickMsg after one second. The tick
// drives the relative-time rendering and the refresh-due check.
func Tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SignInAsync signs in with the given credentials and, on success,
// establishes the session through the gate before reporting back.
func SignInAsync(client *api.Client, gate *session.Gate, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sess, err := client.SignIn(ctx, email, password)
		if err != nil {
			return AuthResultMsg{Err: err}
		}
		gate.Establish(ctx, sess)
		return AuthResultMsg{Session: sess}
	}
}

// SignUpAsync registers a new account and, on success, establishes the
// returned session through the gate.
func SignUpAsync(client *api.Client, gate *session.Gate, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sess, err := client.SignUp(ctx, email, password)
		if err != nil {
			return AuthResultMsg{Err: err}
		}
		gate.Establish(ctx, sess)
		return AuthResultMsg{Session: sess}
	}
}

// RefreshAsync exchanges the current refresh token for a new session.
func RefreshAsync(client *api.Client, gate *session.Gate) tea.Cmd {
	return func() tea.Msg {
		cur := gate.Current()
		if cur == nil || cur.RefreshToken == "" {
			return nil
		}
		ctx := context.Background()
		sess, err := client.Refresh(ctx, cur.RefreshToken)
		if err != nil {
			return SessionRefreshedMsg{Err: err}
		}
		gate.Establish(ctx, sess)
		return SessionRefreshedMsg{Session: sess}
	}
}

// SignOutAsync revokes the session with the provider on a best-effort
// basis, then clears the gate and the board.
func SignOutAsync(client *api.Client, gate *session.Gate, b *board.Board) tea.Cmd {
	return func() tea.Msg {
		if cur := gate.Current(); cur != nil {
			// Revocation failure does not block local sign-out.
			_ = client.SignOut(context.Background(), cur.AccessToken)
		}
		gate.Clear()
		b.Reset()
		return SignedOutMsg{}
	}
}

// LoadBoardAsync fetches the task collection.
func LoadBoardAsync(b *board.Board) tea.Cmd {
	return func() tea.Msg {
		return BoardReloadedMsg{Err: b.Load(context.Background())}
	}
}

// SaveDraftAsync persists the open draft. A validation error comes back
// in DraftSavedMsg for inline display.
func SaveDraftAsync(b *board.Board) tea.Cmd {
	return func() tea.Msg {
		return DraftSavedMsg{Err: b.Save(context.Background())}
	}
}

// ToggleDoneAsync flips a task's completion state.
func ToggleDoneAsync(b *board.Board, id int64) tea.Cmd {
	return func() tea.Msg {
		b.ToggleDone(context.Background(), id)
		return BoardChangedMsg{}
	}
}

// ConfirmDeleteAsync deletes the task pending confirmation.
func ConfirmDeleteAsync(b *board.Board) tea.Cmd {
	return func() tea.Msg {
		b.ConfirmDelete(context.Background())
		return BoardChangedMsg{}
	}
}
