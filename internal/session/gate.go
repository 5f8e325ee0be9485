// Package session tracks the current authenticated session and decides
// between the credential form and the task board. It owns the listener
// registry for session changes and mirrors the identity into the Accounts
// table whenever a session becomes active.
package session

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
)

// Listener is notified with the new session on every change.
// A nil session means signed out.
type Listener func(*api.Session)

// AccountStore mirrors a session's identity into the Accounts table.
// It is implemented by *api.Client.
type AccountStore interface {
	UpsertAccount(ctx context.Context, accessToken string, acct api.Account) error
}

// Gate holds the current session and dispatches change notifications.
// It is safe for concurrent use.
type Gate struct {
	mu        sync.RWMutex
	current   *api.Session
	listeners map[string]Listener
	nextID    atomic.Uint64

	accounts      AccountStore
	log           *logging.Logger
	refreshWindow time.Duration
}

// NewGate creates a Gate with no active session.
// The refresh window controls how long before token expiry RefreshDue
// starts reporting true; zero disables transparent refresh.
func NewGate(accounts AccountStore, log *logging.Logger, refreshWindow time.Duration) *Gate {
	return &Gate{
		listeners:     make(map[string]Listener),
		accounts:      accounts,
		log:           log.WithComponent("session"),
		refreshWindow: refreshWindow,
	}
}

// Subscribe registers a listener for session changes.
// Returns a subscription ID that can be used to unsubscribe.
func (g *Gate) Subscribe(l Listener) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fmt.Sprintf("sub-%d", g.nextID.Add(1))
	g.listeners[id] = l
	return id
}

// Unsubscribe removes a listener by subscription ID.
// Returns true if the subscription was found and removed.
func (g *Gate) Unsubscribe(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.listeners[id]; !ok {
		return false
	}
	delete(g.listeners, id)
	return true
}

// ListenerCount returns the number of registered listeners.
func (g *Gate) ListenerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.listeners)
}

// Establish makes the given session current. Missing user fields are filled
// from the access-token claims, the Accounts record is upserted (failures
// are logged, never surfaced), and listeners are notified. Establishing the
// session that is already current is a no-op, which makes the initial fetch
// and the change notification safe to race.
func (g *Gate) Establish(ctx context.Context, sess *api.Session) {
	if sess == nil || sess.AccessToken == "" {
		return
	}

	fillFromToken(sess)

	g.mu.Lock()
	if g.current != nil && g.current.AccessToken == sess.AccessToken {
		g.mu.Unlock()
		return
	}
	g.current = sess
	g.mu.Unlock()

	log := g.log.WithUser(sess.User.ID)
	log.Info("session established", "email", sess.User.Email)

	if err := g.accounts.UpsertAccount(ctx, sess.AccessToken, api.Account{
		ID:    sess.User.ID,
		Email: sess.User.Email,
	}); err != nil {
		// Data-layer failures degrade silently; the log is the only trace.
		log.Error("account upsert failed", "error", err)
	}

	g.notify(sess)
}

// Clear discards the current session and notifies listeners.
// Clearing an already-empty gate is a no-op.
func (g *Gate) Clear() {
	g.mu.Lock()
	if g.current == nil {
		g.mu.Unlock()
		return
	}
	g.current = nil
	g.mu.Unlock()

	g.log.Info("session cleared")
	g.notify(nil)
}

// Current returns the active session, or nil when signed out.
func (g *Gate) Current() *api.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// Authenticated reports whether a session is active.
func (g *Gate) Authenticated() bool {
	return g.Current() != nil
}

// RefreshDue reports whether the active session's access token expires
// within the configured refresh window.
func (g *Gate) RefreshDue(now time.Time) bool {
	if g.refreshWindow <= 0 {
		return false
	}
	return g.Current().ExpiresWithin(now, g.refreshWindow)
}

// notify dispatches to a snapshot of the listeners so handlers may
// subscribe or unsubscribe without deadlocking.
func (g *Gate) notify(sess *api.Session) {
	g.mu.RLock()
	snapshot := make([]Listener, 0, len(g.listeners))
	for _, l := range g.listeners {
		snapshot = append(snapshot, l)
	}
	g.mu.RUnlock()

	for _, l := range snapshot {
		g.safeCall(l, sess)
	}
}

// safeCall invokes a listener and recovers from panics so one misbehaving
// listener cannot block delivery to the rest.
func (g *Gate) safeCall(l Listener, sess *api.Session) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("session listener panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	l(sess)
}

// fillFromToken recovers user identity and expiry from the access token
// when the auth response did not include them.
func fillFromToken(sess *api.Session) {
	if sess.User.ID != "" && sess.User.Email != "" && !sess.ExpiresAt.IsZero() {
		return
	}

	claims, err := DecodeToken(sess.AccessToken)
	if err != nil {
		return
	}

	if sess.User.ID == "" {
		sess.User.ID = claims.UserID
	}
	if sess.User.Email == "" {
		sess.User.Email = claims.Email
	}
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = claims.ExpiresAt
	}
}
