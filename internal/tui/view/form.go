package view

import (
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// FormState holds the state needed to render the task edit form.
type FormState struct {
	// New distinguishes the create and edit titles.
	New bool

	// SubjectField, TitleField, DueField and NotesField are the
	// pre-rendered text inputs.
	SubjectField string
	TitleField   string
	DueField     string
	NotesField   string

	// Priority is the draft's current priority, cycled with a key.
	Priority task.Priority

	// ErrorMessage is a validation failure shown above the help line.
	ErrorMessage string

	// Width is the available terminal width.
	Width int
}

// FormView renders the create/edit task form.
type FormView struct{}

// NewFormView creates a new FormView instance.
func NewFormView() *FormView {
	return &FormView{}
}

// Render renders the form card.
func (v *FormView) Render(state FormState) string {
	var b strings.Builder

	title := "Edit task"
	if state.New {
		title = "New task"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(v.field("Subject", state.SubjectField))
	b.WriteString(v.field("Title", state.TitleField))
	b.WriteString(v.field("Due date (YYYY-MM-DD)", state.DueField))
	b.WriteString(v.field("Notes", state.NotesField))

	b.WriteString(styles.StatLabel.Render("Priority"))
	b.WriteString("\n")
	b.WriteString(v.priorityRow(state.Priority))
	b.WriteString("\n")

	if state.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(state.ErrorMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("[Enter]") + " save  " +
		styles.HelpKey.Render("[Tab]") + " next field  " +
		styles.HelpKey.Render("[Ctrl+P]") + " priority  " +
		styles.HelpKey.Render("[Esc]") + " cancel")

	width := state.Width
	if width < 40 {
		width = 40
	}
	if width > 80 {
		width = 80
	}
	return styles.ContentBox.Width(width - 4).Render(b.String())
}

func (v *FormView) field(label, input string) string {
	return styles.StatLabel.Render(label) + "\n" + input + "\n\n"
}

// priorityRow highlights the selected priority among all options.
func (v *FormView) priorityRow(selected task.Priority) string {
	var parts []string
	for _, p := range task.Priorities() {
		style := styles.TabInactive
		if p == selected {
			style = styles.PriorityBadge.
				Bold(true).
				Foreground(styles.TextColor).
				Background(styles.PriorityColor(string(p)))
		}
		parts = append(parts, style.Render(string(p)))
	}
	return strings.Join(parts, " ")
}
