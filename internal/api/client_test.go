package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
)

func TestNewClient_MissingConfig(t *testing.T) {
	if _, err := NewClient("", "key"); err == nil {
		t.Error("expected error for empty base URL")
	}
	if _, err := NewClient("https://example.test", ""); err == nil {
		t.Error("expected error for empty anon key")
	}
}

func TestClient_SignIn_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("expected grant_type=password, got %s", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("expected apikey header, got %q", got)
		}

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if creds.Email != "user@example.com" {
			t.Errorf("unexpected email: %s", creds.Email)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at-123",
			"refresh_token": "rt-456",
			"expires_in":    3600,
			"user":          map[string]string{"id": "user-1", "email": "user@example.com"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess, err := client.SignIn(context.Background(), "user@example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.AccessToken != "at-123" {
		t.Errorf("unexpected access token: %s", sess.AccessToken)
	}
	if sess.User.ID != "user-1" {
		t.Errorf("unexpected user id: %s", sess.User.ID)
	}
	if sess.ExpiresAt.IsZero() {
		t.Error("expected ExpiresAt to be derived from expires_in")
	}
}

func TestClient_SignIn_ProviderErrorVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.SignIn(context.Background(), "user@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "Invalid login credentials" {
		t.Errorf("provider message not preserved verbatim: %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", apiErr.StatusCode)
	}
}

func TestClient_ListTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/tasks" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "eq.user-1" {
			t.Errorf("expected user_id=eq.user-1, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer at-123" {
			t.Errorf("expected bearer access token, got %q", got)
		}

		_, _ = w.Write([]byte(`[
			{"id":1,"user_id":"user-1","subject":"Math","title":"Exercises 14-18","due_date":"2024-01-10","priority":"High","notes":"","done":false,"created_at":"2024-01-05T10:00:00Z"},
			{"id":2,"user_id":"user-1","subject":"History","title":"Essay","due_date":"2024-01-12","priority":"Medium","notes":"two pages","done":true,"created_at":"2024-01-04T09:00:00Z"}
		]`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, err := client.ListTasks(context.Background(), "at-123", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Exercises 14-18" {
		t.Errorf("unexpected title: %s", tasks[0].Title)
	}
	if tasks[0].DueDate.String() != "2024-01-10" {
		t.Errorf("unexpected due date: %s", tasks[0].DueDate)
	}
	if tasks[0].Priority != task.PriorityHigh {
		t.Errorf("unexpected priority: %s", tasks[0].Priority)
	}
	if !tasks[1].Done {
		t.Error("expected second task done")
	}
}

func TestClient_UpsertAccount_MergeDuplicates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/Accounts" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		prefer := r.Header.Get("Prefer")
		if prefer != "resolution=merge-duplicates,return=minimal" {
			t.Errorf("unexpected Prefer header: %q", prefer)
		}

		var accounts []Account
		if err := json.NewDecoder(r.Body).Decode(&accounts); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(accounts) != 1 || accounts[0].ID != "user-1" {
			t.Errorf("unexpected payload: %+v", accounts)
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.UpsertAccount(context.Background(), "at-123", Account{ID: "user-1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_UpdateAndDeleteTask(t *testing.T) {
	var gotMethod, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "anon-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.UpdateTask(context.Background(), "at-123", 42, map[string]any{"done": true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotMethod)
	}
	if gotQuery != "id=eq.42" {
		t.Errorf("unexpected query: %s", gotQuery)
	}

	if err := client.DeleteTask(context.Background(), "at-123", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
}

func TestSession_ExpiresWithin(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil session", nil, false},
		{"no expiry known", &Session{}, false},
		{"expires soon", &Session{ExpiresAt: now.Add(30 * time.Second)}, true},
		{"expires later", &Session{ExpiresAt: now.Add(10 * time.Minute)}, false},
		{"already expired", &Session{ExpiresAt: now.Add(-time.Minute)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.ExpiresWithin(now, time.Minute); got != tt.want {
				t.Errorf("ExpiresWithin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProviderMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"auth style", `{"error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"signup style", `{"msg":"User already registered"}`, "User already registered"},
		{"rest style", `{"message":"permission denied for table tasks"}`, "permission denied for table tasks"},
		{"not json", `gateway timeout`, "gateway timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := providerMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("providerMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
