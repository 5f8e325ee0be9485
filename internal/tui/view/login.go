package view

import (
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// LoginState holds the state needed to render the sign-in card.
type LoginState struct {
	// SignUp switches the card between sign-in and registration.
	SignUp bool

	// EmailField and PasswordField are the pre-rendered text inputs.
	EmailField    string
	PasswordField string

	// Busy disables the submit hint while a request is in flight.
	Busy bool

	// ErrorMessage is the provider error from the last failed attempt,
	// shown verbatim.
	ErrorMessage string

	// Width is the available terminal width.
	Width int
}

// LoginView renders the authentication card.
type LoginView struct{}

// NewLoginView creates a new LoginView instance.
func NewLoginView() *LoginView {
	return &LoginView{}
}

// Render renders the sign-in or sign-up card.
func (v *LoginView) Render(state LoginState) string {
	var b strings.Builder

	title := "Sign in"
	if state.SignUp {
		title = "Create account"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Task planner"))
	b.WriteString("\n\n")

	b.WriteString(styles.StatLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(state.EmailField)
	b.WriteString("\n\n")
	b.WriteString(styles.StatLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(state.PasswordField)
	b.WriteString("\n")

	if state.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render(state.ErrorMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if state.Busy {
		b.WriteString(styles.Muted.Render("Signing in..."))
	} else {
		toggle := "sign up instead"
		if state.SignUp {
			toggle = "sign in instead"
		}
		b.WriteString(styles.HelpKey.Render("[Enter]") + " submit  " +
			styles.HelpKey.Render("[Tab]") + " next field  " +
			styles.HelpKey.Render("[Ctrl+S]") + " " + toggle)
	}

	width := state.Width
	if width < 40 {
		width = 40
	}
	if width > 72 {
		width = 72
	}
	return styles.ContentBox.Width(width - 4).Render(b.String())
}
