package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
)

// fakeAccounts records upsert calls, keyed by account id, keeping the
// latest email per id the way the backend's merge-duplicates upsert does.
type fakeAccounts struct {
	mu      sync.Mutex
	calls   int
	records map[string]string // id -> latest email
	err     error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{records: make(map[string]string)}
}

func (f *fakeAccounts) UpsertAccount(_ context.Context, _ string, acct api.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.records[acct.ID] = acct.Email
	return nil
}

func testSession(token, userID, email string) *api.Session {
	return &api.Session{
		AccessToken: token,
		User:        api.User{ID: userID, Email: email},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func TestGate_EstablishNotifiesListeners(t *testing.T) {
	accounts := newFakeAccounts()
	gate := NewGate(accounts, logging.NopLogger(), time.Minute)

	var received *api.Session
	id := gate.Subscribe(func(s *api.Session) {
		received = s
	})
	if id == "" {
		t.Fatal("Subscribe should return a non-empty ID")
	}

	gate.Establish(context.Background(), testSession("at-1", "user-1", "a@example.com"))

	if received == nil {
		t.Fatal("listener should have been notified")
	}
	if received.User.ID != "user-1" {
		t.Errorf("unexpected user id: %s", received.User.ID)
	}
	if !gate.Authenticated() {
		t.Error("gate should be authenticated")
	}
}

func TestGate_EstablishSameSessionTwice_NoOp(t *testing.T) {
	accounts := newFakeAccounts()
	gate := NewGate(accounts, logging.NopLogger(), time.Minute)

	notifications := 0
	gate.Subscribe(func(*api.Session) { notifications++ })

	sess := testSession("at-1", "user-1", "a@example.com")
	gate.Establish(context.Background(), sess)
	gate.Establish(context.Background(), sess)

	if notifications != 1 {
		t.Errorf("expected 1 notification, got %d", notifications)
	}
	if accounts.calls != 1 {
		t.Errorf("expected 1 upsert, got %d", accounts.calls)
	}
}

func TestGate_UpsertIdempotentLatestEmailWins(t *testing.T) {
	accounts := newFakeAccounts()
	gate := NewGate(accounts, logging.NopLogger(), time.Minute)

	gate.Establish(context.Background(), testSession("at-1", "user-1", "old@example.com"))
	gate.Establish(context.Background(), testSession("at-2", "user-1", "new@example.com"))

	accounts.mu.Lock()
	defer accounts.mu.Unlock()
	if len(accounts.records) != 1 {
		t.Fatalf("expected exactly one account record, got %d", len(accounts.records))
	}
	if accounts.records["user-1"] != "new@example.com" {
		t.Errorf("expected latest email, got %s", accounts.records["user-1"])
	}
}

func TestGate_UpsertFailureIsSwallowed(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.err = errors.New("permission denied")
	gate := NewGate(accounts, logging.NopLogger(), time.Minute)

	notified := false
	gate.Subscribe(func(*api.Session) { notified = true })

	gate.Establish(context.Background(), testSession("at-1", "user-1", "a@example.com"))

	if !gate.Authenticated() {
		t.Error("session should be established despite upsert failure")
	}
	if !notified {
		t.Error("listeners should be notified despite upsert failure")
	}
}

func TestGate_ClearNotifiesWithNil(t *testing.T) {
	gate := NewGate(newFakeAccounts(), logging.NopLogger(), time.Minute)

	var got *api.Session
	cleared := false
	gate.Subscribe(func(s *api.Session) {
		got = s
		cleared = s == nil
	})

	gate.Establish(context.Background(), testSession("at-1", "user-1", "a@example.com"))
	gate.Clear()

	if got != nil || !cleared {
		t.Error("listener should receive nil on clear")
	}
	if gate.Authenticated() {
		t.Error("gate should not be authenticated after clear")
	}

	// Clearing again must not re-notify.
	cleared = false
	gate.Clear()
	if cleared {
		t.Error("clearing an empty gate should be a no-op")
	}
}

func TestGate_Unsubscribe(t *testing.T) {
	gate := NewGate(newFakeAccounts(), logging.NopLogger(), time.Minute)

	calls := 0
	id := gate.Subscribe(func(*api.Session) { calls++ })

	if !gate.Unsubscribe(id) {
		t.Error("expected unsubscribe to succeed")
	}
	if gate.Unsubscribe(id) {
		t.Error("double unsubscribe should return false")
	}
	if gate.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", gate.ListenerCount())
	}

	gate.Establish(context.Background(), testSession("at-1", "user-1", "a@example.com"))
	if calls != 0 {
		t.Error("unsubscribed listener should not be called")
	}
}

func TestGate_PanickingListenerDoesNotBlockOthers(t *testing.T) {
	gate := NewGate(newFakeAccounts(), logging.NopLogger(), time.Minute)

	gate.Subscribe(func(*api.Session) { panic("boom") })
	called := false
	gate.Subscribe(func(*api.Session) { called = true })

	gate.Establish(context.Background(), testSession("at-1", "user-1", "a@example.com"))

	if !called {
		t.Error("second listener should run despite first panicking")
	}
}

func TestGate_RefreshDue(t *testing.T) {
	gate := NewGate(newFakeAccounts(), logging.NopLogger(), time.Minute)
	now := time.Now()

	if gate.RefreshDue(now) {
		t.Error("no session: refresh should not be due")
	}

	sess := testSession("at-1", "user-1", "a@example.com")
	sess.ExpiresAt = now.Add(30 * time.Second)
	gate.Establish(context.Background(), sess)

	if !gate.RefreshDue(now) {
		t.Error("refresh should be due inside the window")
	}

	disabled := NewGate(newFakeAccounts(), logging.NopLogger(), 0)
	disabled.Establish(context.Background(), sess)
	if disabled.RefreshDue(now) {
		t.Error("zero window disables refresh")
	}
}

func TestGate_EstablishNilOrTokenless(t *testing.T) {
	gate := NewGate(newFakeAccounts(), logging.NopLogger(), time.Minute)

	notified := false
	gate.Subscribe(func(*api.Session) { notified = true })

	gate.Establish(context.Background(), nil)
	gate.Establish(context.Background(), &api.Session{User: api.User{ID: "user-1"}})

	if notified {
		t.Error("sessions without an access token must be ignored")
	}
	if gate.Authenticated() {
		t.Error("gate should remain unauthenticated")
	}
}
