// Package board owns the task board state: the in-memory task collection,
// the editing draft, the pending-delete confirmation, and the view filter.
// All state changes go through explicit transitions; persistence is
// delegated to a Store whose mutations always return a freshly reloaded
// collection.
package board

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
)

// Sentinel errors returned by board transitions.
var (
	// ErrDraftIncomplete blocks a save when a required field is empty
	// or the due date does not parse. The draft stays open.
	ErrDraftIncomplete = errors.New("subject, title and due date are required")

	// ErrNoDraft is returned when Save is called outside of editing.
	ErrNoDraft = errors.New("no draft is being edited")
)

// Store is the persistence surface the board drives. Every mutation
// returns the reloaded, canonically ordered collection.
// It is implemented by *store.Remote.
type Store interface {
	List(ctx context.Context) ([]task.Task, error)
	Create(ctx context.Context, t task.Task) ([]task.Task, error)
	Update(ctx context.Context, id int64, t task.Task) ([]task.Task, error)
	Toggle(ctx context.Context, id int64, done bool) ([]task.Task, error)
	Delete(ctx context.Context, id int64) ([]task.Task, error)
}

// Draft holds in-progress, unsaved edits to a task. ID is zero for a new
// task and the existing task's id when editing. The due date stays a string
// until save time because it arrives from a free-text input.
type Draft struct {
	ID       int64
	Subject  string
	Title    string
	DueDate  string
	Priority task.Priority
	Notes    string
}

// Board is the task board state container. It is safe for concurrent use;
// the TUI event loop and its async commands share one instance.
type Board struct {
	mu    sync.RWMutex
	store Store
	log   *logging.Logger

	tasks         []task.Task
	filter        task.Filter
	draft         *Draft
	pendingDelete int64 // task id awaiting delete confirmation; 0 = none
}

// New creates an empty board over the given store.
func New(store Store, log *logging.Logger) *Board {
	return &Board{
		store:  store,
		log:    log.WithComponent("board"),
		filter: task.Filter{View: task.ViewAll},
	}
}

// Load replaces the collection with a fresh fetch. A failed load leaves
// the current collection untouched; the error is logged and returned so
// the UI may ignore it.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.store.List(ctx)
	if err != nil {
		b.log.Error("load failed", "error", err)
		return err
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

// Reset discards all board state. Used on sign-out.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tasks = nil
	b.draft = nil
	b.pendingDelete = 0
	b.filter = task.Filter{View: task.ViewAll}
}

// Tasks returns a copy of the full collection in canonical order.
func (b *Board) Tasks() []task.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]task.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Visible returns the filtered projection of the collection, preserving
// canonical order.
func (b *Board) Visible(now time.Time) []task.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter.Apply(b.tasks, now)
}

// Stats derives the aggregate statistics from the unfiltered collection.
func (b *Board) Stats(now time.Time, layout string) task.Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return task.ComputeStats(b.tasks, now, layout)
}

// Task returns the task with the given id, if present.
func (b *Board) Task(id int64) (task.Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, t := range b.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// StartEdit opens a draft: a copy of the given task's editable fields, or
// a blank draft for a new task when existing is nil. Any previous draft is
// replaced.
func (b *Board) StartEdit(existing *task.Task) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing == nil {
		b.draft = &Draft{Priority: task.PriorityMedium}
		return
	}
	due := ""
	if !existing.DueDate.IsZero() {
		due = existing.DueDate.String()
	}
	b.draft = &Draft{
		ID:       existing.ID,
		Subject:  existing.Subject,
		Title:    existing.Title,
		DueDate:  due,
		Priority: existing.Priority,
		Notes:    existing.Notes,
	}
}

// CancelEdit discards the draft without any network call.
func (b *Board) CancelEdit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft = nil
}

// Editing reports whether a draft is open.
func (b *Board) Editing() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.draft != nil
}

// Draft returns a snapshot of the open draft.
func (b *Board) Draft() (Draft, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.draft == nil {
		return Draft{}, false
	}
	return *b.draft, true
}

// SetDraft overwrites the open draft's editable fields, keeping its
// identity. A no-op when no draft is open.
func (b *Board) SetDraft(d Draft) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.draft == nil {
		return
	}
	d.ID = b.draft.ID
	b.draft = &d
}

// Save validates the draft and persists it: insert when the draft has no
// id, full-field update when it does, each followed by a reload. On
// validation failure the draft stays open and ErrDraftIncomplete is
// returned. Store failures are logged and swallowed; the draft is still
// discarded and the collection left as it was, until the next mutation
// re-syncs it.
func (b *Board) Save(ctx context.Context) error {
	b.mu.Lock()
	if b.draft == nil {
		b.mu.Unlock()
		return ErrNoDraft
	}
	draft := *b.draft

	due, err := validateDraft(draft)
	if err != nil {
		b.mu.Unlock()
		return err
	}

	b.draft = nil
	b.mu.Unlock()

	t := task.Task{
		Subject:  strings.TrimSpace(draft.Subject),
		Title:    strings.TrimSpace(draft.Title),
		DueDate:  due,
		Priority: draft.Priority,
		Notes:    draft.Notes,
	}

	var tasks []task.Task
	if draft.ID == 0 {
		tasks, err = b.store.Create(ctx, t)
	} else {
		tasks, err = b.store.Update(ctx, draft.ID, t)
	}
	if err != nil {
		b.log.Error("save failed", "id", draft.ID, "error", err)
		return nil
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

// validateDraft checks the required fields and parses the due date.
func validateDraft(d Draft) (task.Date, error) {
	if strings.TrimSpace(d.Subject) == "" || strings.TrimSpace(d.Title) == "" {
		return task.Date{}, ErrDraftIncomplete
	}
	due, err := task.ParseDate(strings.TrimSpace(d.DueDate))
	if err != nil {
		return task.Date{}, ErrDraftIncomplete
	}
	return due, nil
}

// ToggleDone flips a task's done flag and applies the reloaded collection.
// Failures are logged and swallowed.
func (b *Board) ToggleDone(ctx context.Context, id int64) {
	t, ok := b.Task(id)
	if !ok {
		return
	}

	tasks, err := b.store.Toggle(ctx, id, !t.Done)
	if err != nil {
		b.log.Error("toggle failed", "id", id, "error", err)
		return
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
}

// RequestDelete marks a task as pending delete confirmation. Only one task
// may be pending at a time; a new request replaces the previous one.
func (b *Board) RequestDelete(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingDelete = id
}

// PendingDelete returns the id awaiting confirmation, 0 when none.
func (b *Board) PendingDelete() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pendingDelete
}

// CancelDelete clears the pending confirmation without deleting.
func (b *Board) CancelDelete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingDelete = 0
}

// ConfirmDelete deletes the pending task and applies the reloaded
// collection. The pending state is cleared regardless of the outcome;
// failures are logged and swallowed.
func (b *Board) ConfirmDelete(ctx context.Context) {
	b.mu.Lock()
	id := b.pendingDelete
	b.pendingDelete = 0
	b.mu.Unlock()

	if id == 0 {
		return
	}

	tasks, err := b.store.Delete(ctx, id)
	if err != nil {
		b.log.Error("delete failed", "id", id, "error", err)
		return
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
}

// SetView switches the view mode.
func (b *Board) SetView(v task.View) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.View = v
}

// SetQuery sets the title search text.
func (b *Board) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Query = q
}

// SetSubject sets the subject filter text.
func (b *Board) SetSubject(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Subject = s
}

// Filter returns a snapshot of the view-filter state.
func (b *Board) Filter() task.Filter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter
}
