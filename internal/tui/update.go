package tui

import (
	"strings"
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/msg"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the clock tick and, for a restored session, the initial
// board load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, msg.Tick()}
	if m.mode == modeBoard {
		cmds = append(cmds, msg.LoadBoardAsync(m.board))
	}
	return tea.Batch(cmds...)
}

// Update is the Bubbletea update loop.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case msg.TickMsg:
		m.now = time.Time(message)
		cmds := []tea.Cmd{msg.Tick()}
		if m.gate.Authenticated() && m.gate.RefreshDue(m.now) {
			cmds = append(cmds, msg.RefreshAsync(m.client, m.gate))
		}
		return m, tea.Batch(cmds...)

	case msg.AuthResultMsg:
		m.authBusy = false
		if message.Err != nil {
			m.authError = message.Err.Error()
			return m, nil
		}
		m.authError = ""
		m.mode = modeBoard
		return m, msg.LoadBoardAsync(m.board)

	case msg.SessionChangedMsg:
		if message.Session == nil && m.mode != modeLogin {
			m.mode = modeLogin
			m.resetLogin()
		}
		return m, nil

	case msg.SessionRefreshedMsg:
		if message.Err != nil {
			// The session stays usable until it actually expires.
			m.log.Warn("token refresh failed", "error", message.Err)
		}
		return m, nil

	case msg.SignedOutMsg:
		m.mode = modeLogin
		m.resetLogin()
		return m, nil

	case msg.BoardReloadedMsg, msg.BoardChangedMsg:
		m.clampSelection()
		return m, nil

	case msg.DraftSavedMsg:
		if message.Err != nil {
			m.formError = message.Err.Error()
			return m, nil
		}
		m.formError = ""
		m.mode = modeBoard
		m.clampSelection()
		return m, nil

	case msg.ErrMsg:
		m.log.Error("ui error", "error", message.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeLogin:
		return m.handleLoginKey(key)
	case modeEdit:
		return m.handleFormKey(key)
	default:
		return m.handleBoardKey(key)
	}
}

func (m Model) handleLoginKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.authBusy {
		return m, nil
	}

	switch key.String() {
	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == fieldEmail {
			m.loginFocus = fieldPassword
			m.emailInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.loginFocus = fieldEmail
			m.passwordInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil

	case "ctrl+s":
		m.signUp = !m.signUp
		m.authError = ""
		return m, nil

	case "enter":
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if !strings.Contains(email, "@") {
			m.authError = "Enter a valid email address"
			return m, nil
		}
		if len(password) < 6 {
			m.authError = "Password must be at least 6 characters"
			return m, nil
		}
		m.authBusy = true
		m.authError = ""
		if m.signUp {
			return m, msg.SignUpAsync(m.client, m.gate, email, password)
		}
		return m, msg.SignInAsync(m.client, m.gate, email, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == fieldEmail {
		m.emailInput, cmd = m.emailInput.Update(key)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(key)
	}
	return m, cmd
}

func (m Model) handleBoardKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(key)
	}
	if m.filteringSubject {
		return m.handleSubjectKey(key)
	}

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.visibleTasks())-1 {
			m.selected++
		}
		return m, nil

	case " ":
		if t, ok := m.selectedTask(); ok {
			return m, msg.ToggleDoneAsync(m.board, t.ID)
		}
		return m, nil

	case "n":
		m.board.StartEdit(nil)
		m.openForm()
		return m, nil

	case "e":
		if t, ok := m.selectedTask(); ok {
			m.board.StartEdit(&t)
			m.openForm()
		}
		return m, nil

	case "d":
		if t, ok := m.selectedTask(); ok {
			m.board.RequestDelete(t.ID)
		}
		return m, nil

	case "y":
		if m.board.PendingDelete() != 0 {
			return m, msg.ConfirmDeleteAsync(m.board)
		}
		return m, nil

	case "esc":
		m.board.CancelDelete()
		return m, nil

	case "tab":
		m.board.SetView(nextView(m.board.Filter().View, 1))
		m.clampSelection()
		return m, nil

	case "shift+tab":
		m.board.SetView(nextView(m.board.Filter().View, -1))
		m.clampSelection()
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.filteringSubject = true
		m.subjectInput.Focus()
		return m, textinput.Blink

	case "r":
		return m, msg.LoadBoardAsync(m.board)

	case "ctrl+l":
		return m, msg.SignOutAsync(m.client, m.gate, m.board)
	}

	return m, nil
}

// handleSearchKey routes keys to the title search input. The filter is
// applied live on every change.
func (m Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.board.SetQuery("")
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	m.board.SetQuery(m.searchInput.Value())
	m.clampSelection()
	return m, cmd
}

func (m Model) handleSubjectKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		m.filteringSubject = false
		m.subjectInput.Blur()
		return m, nil
	case "esc":
		m.filteringSubject = false
		m.subjectInput.Blur()
		m.subjectInput.SetValue("")
		m.board.SetSubject("")
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.subjectInput, cmd = m.subjectInput.Update(key)
	m.board.SetSubject(m.subjectInput.Value())
	m.clampSelection()
	return m, cmd
}

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.board.CancelEdit()
		m.formError = ""
		m.mode = modeBoard
		return m, nil

	case "tab", "down":
		return m.focusFormField((m.formFocus + 1) % formFieldCount), nil

	case "shift+tab", "up":
		return m.focusFormField((m.formFocus + formFieldCount - 1) % formFieldCount), nil

	case "ctrl+p":
		m.formPriority = nextPriority(m.formPriority)
		return m, nil

	case "enter":
		m.syncDraft()
		return m, msg.SaveDraftAsync(m.board)
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(key)
	return m, cmd
}

func (m Model) focusFormField(f formField) Model {
	m.formInputs[m.formFocus].Blur()
	m.formFocus = f
	m.formInputs[f].Focus()
	return m
}

// nextView cycles through the view modes in display order.
func nextView(current task.View, step int) task.View {
	views := task.Views()
	for i, v := range views {
		if v == current {
			return views[(i+len(views)+step)%len(views)]
		}
	}
	return views[0]
}

// nextPriority cycles Low, Medium, High.
func nextPriority(current task.Priority) task.Priority {
	priorities := task.Priorities()
	for i, p := range priorities {
		if p == current {
			return priorities[(i+1)%len(priorities)]
		}
	}
	return task.PriorityMedium
}
