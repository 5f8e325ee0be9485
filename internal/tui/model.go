package tui

import (
	"time"

	"github.com/ElizavetaFed/Task-Manager2025/internal/api"
	"github.com/ElizavetaFed/Task-Manager2025/internal/board"
	"github.com/ElizavetaFed/Task-Manager2025/internal/config"
	"github.com/ElizavetaFed/Task-Manager2025/internal/logging"
	"github.com/ElizavetaFed/Task-Manager2025/internal/session"
	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/view"
	"github.com/charmbracelet/bubbles/textinput"
)

// mode selects which screen the model renders.
type mode int

const (
	modeLogin mode = iota
	modeBoard
	modeEdit
)

// loginField indexes the focusable login inputs.
type loginField int

const (
	fieldEmail loginField = iota
	fieldPassword
)

// formField indexes the focusable edit-form inputs.
type formField int

const (
	formSubject formField = iota
	formTitle
	formDue
	formNotes
	formFieldCount
)

// Model holds the TUI application state.
type Model struct {
	client *api.Client
	gate   *session.Gate
	board  *board.Board
	cfg    *config.Config
	log    *logging.Logger

	mode     mode
	width    int
	height   int
	now      time.Time
	quitting bool

	// login screen
	signUp        bool
	authBusy      bool
	authError     string
	loginFocus    loginField
	emailInput    textinput.Model
	passwordInput textinput.Model

	// board screen
	selected         int
	searching        bool
	filteringSubject bool
	searchInput      textinput.Model
	subjectInput     textinput.Model

	// edit form
	formFocus    formField
	formInputs   [formFieldCount]textinput.Model
	formPriority task.Priority
	formError    string

	// views
	loginView  *view.LoginView
	headerView *view.HeaderView
	tabsView   *view.TabsView
	listView   *view.ListView
	formView   *view.FormView
	helpView   *view.HelpBarView
}

// NewModel creates the TUI model. When the gate already holds a session
// the model starts on the board.
func NewModel(client *api.Client, gate *session.Gate, b *board.Board, cfg *config.Config, log *logging.Logger) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	search := textinput.New()
	search.Placeholder = "search titles"
	search.CharLimit = 120
	search.Width = 30

	subject := textinput.New()
	subject.Placeholder = "filter by subject"
	subject.CharLimit = 120
	subject.Width = 30

	var form [formFieldCount]textinput.Model
	for i := range form {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		form[i] = ti
	}
	form[formDue].Placeholder = "2006-01-02"

	m := Model{
		client: client,
		gate:   gate,
		board:  b,
		cfg:    cfg,
		log:    log.WithComponent("tui"),

		now:           time.Now(),
		emailInput:    email,
		passwordInput: password,
		searchInput:   search,
		subjectInput:  subject,
		formInputs:    form,
		formPriority:  task.PriorityMedium,

		loginView:  view.NewLoginView(),
		headerView: view.NewHeaderView(),
		tabsView:   view.NewTabsView(),
		listView:   view.NewListView(),
		formView:   view.NewFormView(),
		helpView:   view.NewHelpBarView(),
	}

	if gate.Authenticated() {
		m.mode = modeBoard
	}
	return m
}

// visibleTasks returns the board's filtered projection anchored at the
// model's clock.
func (m Model) visibleTasks() []task.Task {
	return m.board.Visible(m.now)
}

// selectedTask returns the highlighted task, if any.
func (m Model) selectedTask() (task.Task, bool) {
	visible := m.visibleTasks()
	if m.selected < 0 || m.selected >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.selected], true
}

// clampSelection keeps the cursor inside the visible range after the
// collection or the filter changed.
func (m *Model) clampSelection() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.selected = 0
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// openForm loads the board draft into the form inputs and switches to
// the edit screen.
func (m *Model) openForm() {
	draft, ok := m.board.Draft()
	if !ok {
		return
	}
	m.formInputs[formSubject].SetValue(draft.Subject)
	m.formInputs[formTitle].SetValue(draft.Title)
	m.formInputs[formDue].SetValue(draft.DueDate)
	m.formInputs[formNotes].SetValue(draft.Notes)
	m.formPriority = draft.Priority
	m.formError = ""
	m.formFocus = formSubject
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	m.formInputs[formSubject].Focus()
	m.mode = modeEdit
}

// syncDraft pushes the form inputs back into the board draft.
func (m *Model) syncDraft() {
	m.board.SetDraft(board.Draft{
		Subject:  m.formInputs[formSubject].Value(),
		Title:    m.formInputs[formTitle].Value(),
		DueDate:  m.formInputs[formDue].Value(),
		Notes:    m.formInputs[formNotes].Value(),
		Priority: m.formPriority,
	})
}

// resetLogin clears the login inputs and errors, focusing the email
// field again.
func (m *Model) resetLogin() {
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	m.passwordInput.Blur()
	m.emailInput.Focus()
	m.loginFocus = fieldEmail
	m.authError = ""
	m.authBusy = false
	m.signUp = false
}

// userEmail returns the signed-in address for the header.
func (m Model) userEmail() string {
	if sess := m.gate.Current(); sess != nil {
		return sess.User.Email
	}
	return ""
}
