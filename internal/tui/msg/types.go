package msg

import (
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
)

// TickMsg is sent periodically to drive clock updates and the token
// refresh check.
type TickMsg time.Time

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}

// AuthResultMsg is the outcome of an async sign-in or sign-up attempt.
// On success Session is set and the gate has already been established.
type AuthResultMsg struct {
	Session *api.Session
	Err     error
}

// SessionChangedMsg is forwarded from the session gate whenever the
// authenticated session changes. Session is nil after sign-out.
type SessionChangedMsg struct {
	Session *api.Session
}

// SessionRefreshedMsg is the outcome of an async token refresh.
type SessionRefreshedMsg struct {
	Session *api.Session
	Err     error
}

// SignedOutMsg signals that sign-out has completed and all local state
// is cleared.
type SignedOutMsg struct{}

// BoardReloadedMsg signals that the board finished a fetch. Err is kept
// for logging; the UI renders whatever the board holds.
type BoardReloadedMsg struct {
	Err error
}

// DraftSavedMsg is the outcome of an async draft save. Err carries a
// validation failure; persistence failures never surface here.
type DraftSavedMsg struct {
	Err error
}

// BoardChangedMsg signals that a toggle or delete round-trip finished.
type BoardChangedMsg struct{}
