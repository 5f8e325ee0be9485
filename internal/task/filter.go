package task

import (
	"strings"
	"time"
)

// View selects which slice of the collection is visible.
type View string

const (
	ViewAll   View = "all"
	ViewToday View = "today"
	ViewWeek  View = "week"
	ViewDone  View = "done"
)

// Views returns all view modes in display order.
func Views() []View {
	return []View{ViewAll, ViewToday, ViewWeek, ViewDone}
}

// Label returns the display name for a view mode.
func (v View) Label() string {
	switch v {
	case ViewToday:
		return "Today"
	case ViewWeek:
		return "Week"
	case ViewDone:
		return "Done"
	default:
		return "All"
	}
}

// Filter holds the view-filter state: a view mode plus two free-text
// predicates. The zero value (ViewAll is selected explicitly) matches
// everything.
type Filter struct {
	View    View
	Query   string // case-insensitive substring match on Title
	Subject string // case-insensitive substring match on Subject
}

// Match reports whether a task passes every predicate.
func (f Filter) Match(t Task, now time.Time) bool {
	return f.matchView(t, now) && f.matchQuery(t) && f.matchSubject(t)
}

// Apply returns the tasks passing every predicate, preserving input order.
// It never re-sorts: callers apply it on top of the canonical order.
func (f Filter) Apply(tasks []Task, now time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// Active reports whether any predicate excludes anything.
func (f Filter) Active() bool {
	return (f.View != "" && f.View != ViewAll) || f.Query != "" || f.Subject != ""
}

func (f Filter) matchView(t Task, now time.Time) bool {
	switch f.View {
	case ViewToday:
		return t.DueDate.Normalized().Equal(NormalizeDate(now))
	case ViewWeek:
		// Deliberately unnormalized: the today and overdue checks
		// truncate to midnight, the week window does not. A task due
		// today at midnight is outside the window once now is past it.
		due := t.DueDate.Time
		return !due.Before(now) && !due.After(now.AddDate(0, 0, 7))
	case ViewDone:
		return t.Done
	default:
		return true
	}
}

func (f Filter) matchQuery(t Task) bool {
	if f.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Query))
}

func (f Filter) matchSubject(t Task) bool {
	if f.Subject == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Subject), strings.ToLower(f.Subject))
}
