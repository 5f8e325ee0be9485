package tui

import (
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/view"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeLogin:
		return m.renderLogin()
	case modeEdit:
		return m.renderForm()
	default:
		return m.renderBoard()
	}
}

func (m Model) renderLogin() string {
	return m.loginView.Render(view.LoginState{
		SignUp:        m.signUp,
		EmailField:    m.emailInput.View(),
		PasswordField: m.passwordInput.View(),
		Busy:          m.authBusy,
		ErrorMessage:  m.authError,
		Width:         m.width,
	})
}

func (m Model) renderForm() string {
	return m.formView.Render(view.FormState{
		New:          m.draftIsNew(),
		SubjectField: m.formInputs[formSubject].View(),
		TitleField:   m.formInputs[formTitle].View(),
		DueField:     m.formInputs[formDue].View(),
		NotesField:   m.formInputs[formNotes].View(),
		Priority:     m.formPriority,
		ErrorMessage: m.formError,
		Width:        m.width,
	})
}

func (m Model) draftIsNew() bool {
	draft, ok := m.board.Draft()
	return ok && draft.ID == 0
}

func (m Model) renderBoard() string {
	var b strings.Builder

	filter := m.board.Filter()

	b.WriteString(m.headerView.Render(view.HeaderState{
		Email: m.userEmail(),
		Stats: m.board.Stats(m.now, m.cfg.TUI.DateFormat),
		Width: m.width,
	}))
	b.WriteString("\n\n")

	b.WriteString(m.tabsView.Render(view.TabsState{
		Active:  filter.View,
		Query:   filter.Query,
		Subject: filter.Subject,
	}))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(styles.StatLabel.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	if m.filteringSubject {
		b.WriteString(styles.StatLabel.Render("Subject: "))
		b.WriteString(m.subjectInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.listView.Render(view.ListState{
		Tasks:         m.visibleTasks(),
		Selected:      m.selected,
		PendingDelete: m.board.PendingDelete(),
		Now:           m.now,
		DateLayout:    m.cfg.TUI.DateFormat,
		FilterActive:  filter.Active(),
		Width:         m.width,
	}))
	b.WriteString("\n")

	b.WriteString(m.helpView.Render(view.HelpBarState{
		Searching:        m.searching,
		FilteringSubject: m.filteringSubject,
		PendingDelete:    m.board.PendingDelete() != 0,
	}))

	return b.String()
}
