package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
)

// Account mirrors one row of the Accounts table: the identity of a session,
// upserted on every login.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UpsertAccount creates or overwrites the account record keyed by user id.
// The merge-duplicates resolution makes the call idempotent.
func (c *Client) UpsertAccount(ctx context.Context, accessToken string, acct Account) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   restPath + "/Accounts",
		token:  accessToken,
		body:   []Account{acct},
		prefer: "resolution=merge-duplicates,return=minimal",
	})
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

// ListTasks fetches every task owned by the given user. The returned slice
// is in backend order; callers apply the canonical sort.
func (c *Client) ListTasks(ctx context.Context, accessToken, userID string) ([]task.Task, error) {
	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   restPath + "/tasks?select=*&user_id=" + eq(userID),
		token:  accessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return tasks, nil
}

// InsertTask creates a new task row. The id and created_at columns are
// assigned by the backend.
func (c *Client) InsertTask(ctx context.Context, accessToken string, t task.Task) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   restPath + "/tasks",
		token:  accessToken,
		body:   []task.Task{t},
		prefer: "return=minimal",
	})
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// UpdateTask patches the given columns of one task row.
func (c *Client) UpdateTask(ctx context.Context, accessToken string, id int64, fields map[string]any) error {
	_, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   restPath + "/tasks?id=" + eq(id),
		token:  accessToken,
		body:   fields,
		prefer: "return=minimal",
	})
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes one task row.
func (c *Client) DeleteTask(ctx context.Context, accessToken string, id int64) error {
	_, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   restPath + "/tasks?id=" + eq(id),
		token:  accessToken,
	})
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
