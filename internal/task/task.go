// Package task defines the task domain model and the pure list operations
// the board is built on: canonical ordering, view filtering, and derived
// statistics. All time-dependent functions take an explicit reference time
// so behavior is reproducible in tests.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the task priority level stored in the backend.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities returns all priority levels in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string to a Priority, case-insensitively.
// Unrecognized values default to PriorityMedium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// UnmarshalJSON normalizes priority values arriving from the backend.
// Unknown, empty, and null values become PriorityMedium.
func (p *Priority) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*p = ParsePriority(s)
	return nil
}

// Task mirrors one row of the backend "tasks" table.
type Task struct {
	ID        int64     `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Title     string    `json:"title"`
	DueDate   Date      `json:"due_date"`
	Priority  Priority  `json:"priority"`
	Notes     string    `json:"notes"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Overdue reports whether the task is incomplete and due strictly before
// today, with both sides normalized to local midnight.
func (t Task) Overdue(now time.Time) bool {
	return !t.Done && t.DueDate.Normalized().Before(NormalizeDate(now))
}

// Date is a calendar date without a time component, serialized as
// "2006-01-02" the way the backend's date columns are.
type Date struct {
	time.Time
}

// dateLayout is the wire format for date columns.
const dateLayout = "2006-01-02"

// NewDate builds a Date at local midnight of the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate parses a "2006-01-02" string into a Date in the local time zone.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String renders the date in wire format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Normalized returns the date truncated to local midnight. Dates built via
// ParseDate/NewDate are already normalized; this guards values constructed
// from arbitrary timestamps.
func (d Date) Normalized() time.Time {
	return NormalizeDate(d.Time)
}

// MarshalJSON encodes the date as a "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "2006-01-02" string, tolerating a timestamp
// suffix that some backends append to date columns.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NormalizeDate truncates a timestamp to midnight in the local time zone.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
