// Package store adapts the backend API to the task board: a thin
// pass-through with no cache and no retries, where every mutation is
// followed by an unconditional reload of the owner's task collection.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
)

// ErrNoSession is returned when an operation is attempted while signed out.
var ErrNoSession = errors.New("no active session")

// Backend is the slice of the API client the store uses.
type Backend interface {
	ListTasks(ctx context.Context, accessToken, userID string) ([]task.Task, error)
	InsertTask(ctx context.Context, accessToken string, t task.Task) error
	UpdateTask(ctx context.Context, accessToken string, id int64, fields map[string]any) error
	DeleteTask(ctx context.Context, accessToken string, id int64) error
}

// SessionSource provides the credentials for each call.
// It is implemented by *session.Gate.
type SessionSource interface {
	Current() *api.Session
}

// Remote is the task store adapter bound to the current session.
type Remote struct {
	backend  Backend
	sessions SessionSource
	log      *logging.Logger
}

// NewRemote creates a store adapter over the given backend.
func NewRemote(backend Backend, sessions SessionSource, log *logging.Logger) *Remote {
	return &Remote{
		backend:  backend,
		sessions: sessions,
		log:      log.WithComponent("store"),
	}
}

// creds resolves the access token and user id for the active session.
func (r *Remote) creds() (token, userID string, err error) {
	sess := r.sessions.Current()
	if sess == nil {
		return "", "", ErrNoSession
	}
	return sess.AccessToken, sess.User.ID, nil
}

// List fetches the owner's full task collection in canonical order.
func (r *Remote) List(ctx context.Context) ([]task.Task, error) {
	token, userID, err := r.creds()
	if err != nil {
		return nil, err
	}

	tasks, err := r.backend.ListTasks(ctx, token, userID)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task.SortCanonical(tasks)
	return tasks, nil
}

// Create inserts a new task owned by the current user and reloads.
// New tasks always start incomplete.
func (r *Remote) Create(ctx context.Context, t task.Task) ([]task.Task, error) {
	token, userID, err := r.creds()
	if err != nil {
		return nil, err
	}

	t.ID = 0
	t.UserID = userID
	t.Done = false
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}

	if err := r.backend.InsertTask(ctx, token, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	r.log.Info("task created", "title", t.Title)
	return r.List(ctx)
}

// Update overwrites the editable fields of an existing task and reloads.
// The done flag is owned by Toggle and left untouched here.
func (r *Remote) Update(ctx context.Context, id int64, t task.Task) ([]task.Task, error) {
	token, _, err := r.creds()
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"subject":  t.Subject,
		"title":    t.Title,
		"due_date": t.DueDate,
		"priority": t.Priority,
		"notes":    t.Notes,
	}

	if err := r.backend.UpdateTask(ctx, token, id, fields); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	r.log.Info("task updated", "id", id)
	return r.List(ctx)
}

// Toggle flips the done flag of one task and reloads.
func (r *Remote) Toggle(ctx context.Context, id int64, done bool) ([]task.Task, error) {
	token, _, err := r.creds()
	if err != nil {
		return nil, err
	}

	if err := r.backend.UpdateTask(ctx, token, id, map[string]any{"done": done}); err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}

	r.log.Info("task toggled", "id", id, "done", done)
	return r.List(ctx)
}

// Delete removes one task and reloads.
func (r *Remote) Delete(ctx context.Context, id int64) ([]task.Task, error) {
	token, _, err := r.creds()
	if err != nil {
		return nil, err
	}

	if err := r.backend.DeleteTask(ctx, token, id); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	r.log.Info("task deleted", "id", id)
	return r.List(ctx)
}
