package view

import (
	"strings"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// ListState holds the state needed to render the task list.
type ListState struct {
	// Tasks is the visible (already filtered and sorted) projection.
	Tasks []task.Task

	// Selected is the index of the highlighted row, -1 for none.
	Selected int

	// PendingDelete is the id of the task awaiting delete confirmation,
	// 0 when none.
	PendingDelete int64

	// Now anchors the overdue highlighting.
	Now time.Time

	// DateLayout is the configured due-date display format.
	DateLayout string

	// FilterActive distinguishes "no tasks yet" from "nothing matches".
	FilterActive bool

	// Width is the available terminal width.
	Width int
}

// ListView renders the task rows.
type ListView struct{}

// NewListView creates a new ListView instance.
func NewListView() *ListView {
	return &ListView{}
}

// Render renders the task list, or a hint when it is empty.
func (v *ListView) Render(state ListState) string {
	if len(state.Tasks) == 0 {
		if state.FilterActive {
			return styles.Muted.Render("Nothing matches the current filter.")
		}
		return styles.Muted.Render("No tasks yet. Press ") +
			styles.HelpKey.Render("n") +
			styles.Muted.Render(" to add your first one.")
	}

	var b strings.Builder
	for i, t := range state.Tasks {
		b.WriteString(v.renderRow(t, i == state.Selected, state))
		b.WriteString("\n")
		if t.ID == state.PendingDelete {
			b.WriteString("    ")
			b.WriteString(styles.ConfirmPrompt.Render("Delete this task?") + "  " +
				styles.HelpKey.Render("[y]") + " confirm  " +
				styles.HelpKey.Render("[Esc]") + " cancel")
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *ListView) renderRow(t task.Task, selected bool, state ListState) string {
	check := "[ ]"
	if t.Done {
		check = "[x]"
	}

	due := task.EmptyDueDisplay
	if !t.DueDate.IsZero() {
		due = t.DueDate.Format(state.DateLayout)
	}

	title := t.Title
	if t.Done {
		title = styles.RowDone.Render(title)
	}

	parts := []string{check, title}
	if t.Subject != "" {
		parts = append(parts, styles.Muted.Render(t.Subject))
	}
	parts = append(parts, styles.Muted.Render(due))
	parts = append(parts, v.priorityBadge(t.Priority))
	if t.Overdue(state.Now) {
		parts = append(parts, styles.OverdueBadge.Render("overdue"))
	}
	if t.Notes != "" {
		parts = append(parts, styles.Subtitle.Render(t.Notes))
	}

	row := strings.Join(parts, "  ")
	if selected {
		return styles.RowSelected.Render("> " + row)
	}
	return "  " + row
}

func (v *ListView) priorityBadge(p task.Priority) string {
	return styles.PriorityBadge.
		Foreground(styles.PriorityColor(string(p))).
		Render(string(p))
}
