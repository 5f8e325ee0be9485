package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client cares about.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// DecodeToken extracts claims from a backend access token without verifying
// its signature. The client never holds the project's signing secret; the
// backend verifies tokens on every request, so the decoded values are only
// used for display and refresh scheduling.
func DecodeToken(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("decode access token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	var c Claims
	if sub, ok := mapClaims["sub"].(string); ok {
		c.UserID = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		c.Email = email
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return c, nil
}
