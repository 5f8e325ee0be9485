package view

import (
	"fmt"
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// HeaderState holds the state needed to render the stats header.
type HeaderState struct {
	// Email is the signed-in user's address.
	Email string

	// Stats are the aggregate board statistics.
	Stats task.Stats

	// Width is the available terminal width.
	Width int
}

// HeaderView renders the board header with the aggregate statistics.
type HeaderView struct{}

// NewHeaderView creates a new HeaderView instance.
func NewHeaderView() *HeaderView {
	return &HeaderView{}
}

// Render renders the header line.
func (v *HeaderView) Render(state HeaderState) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tasks"))
	if state.Email != "" {
		b.WriteString("  ")
		b.WriteString(styles.Subtitle.Render(state.Email))
	}
	b.WriteString("\n")

	stats := []string{
		v.stat("total", fmt.Sprintf("%d", state.Stats.Total)),
		v.stat("done", fmt.Sprintf("%d", state.Stats.Completed)),
		v.overdueStat(state.Stats.Overdue),
		v.stat("nearest due", state.Stats.NearestDue),
	}
	b.WriteString(strings.Join(stats, styles.Muted.Render("  │  ")))

	return styles.Header.Width(state.Width).Render(b.String())
}

func (v *HeaderView) stat(label, value string) string {
	return styles.StatValue.Render(value) + " " + styles.StatLabel.Render(label)
}

// overdueStat highlights the overdue count when it is non-zero.
func (v *HeaderView) overdueStat(n int) string {
	value := fmt.Sprintf("%d", n)
	if n > 0 {
		return styles.OverdueBadge.Render(value) + " " + styles.StatLabel.Render("overdue")
	}
	return v.stat("overdue", value)
}
