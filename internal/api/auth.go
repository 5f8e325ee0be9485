package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// User is the identity attached to a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated identity context returned by the auth
// endpoints.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`

	// ExpiresAt is derived from ExpiresIn when the session is received.
	// The auth endpoints never send it; it survives the session cache.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// ExpiresWithin reports whether the access token expires before now+window.
// Sessions without a known expiry never report true.
func (s *Session) ExpiresWithin(now time.Time, window time.Duration) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}
	return s.ExpiresAt.Before(now.Add(window))
}

// credentials is the body for password-based auth calls.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.tokenRequest(ctx, authPath+"/token?grant_type=password", credentials{
		Email:    email,
		Password: password,
	})
}

// SignUp registers a new user. Depending on the project's email-confirmation
// setting the returned session may carry only the user, with no access token.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.tokenRequest(ctx, authPath+"/signup", credentials{
		Email:    email,
		Password: password,
	})
}

// Refresh exchanges a refresh token for a fresh session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	return c.tokenRequest(ctx, authPath+"/token?grant_type=refresh_token", map[string]string{
		"refresh_token": refreshToken,
	})
}

// SignOut revokes the session's refresh token server-side. The caller is
// responsible for discarding the local session regardless of the outcome.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   authPath + "/logout",
		token:  accessToken,
	})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// tokenRequest posts a body to an auth endpoint and decodes the session.
func (c *Client) tokenRequest(ctx context.Context, path string, body any) (*Session, error) {
	respBody, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   path,
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(respBody, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if sess.ExpiresIn > 0 {
		sess.ExpiresAt = time.Now().Add(time.Duration(sess.ExpiresIn) * time.Second)
	}

	return &sess, nil
}
