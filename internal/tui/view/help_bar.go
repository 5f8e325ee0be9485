package view

import (
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Searching indicates the title search input has focus.
	Searching bool

	// FilteringSubject indicates the subject filter input has focus.
	FilteringSubject bool

	// PendingDelete indicates a delete confirmation is showing.
	PendingDelete bool
}

// HelpBarView renders the key hints for the board.
type HelpBarView struct{}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{}
}

// Render renders the help bar for the current board state.
func (v *HelpBarView) Render(state HelpBarState) string {
	if state.Searching || state.FilteringSubject {
		return styles.HelpBar.Render(
			styles.HelpKey.Render("[Enter]") + " apply  " +
				styles.HelpKey.Render("[Esc]") + " clear",
		)
	}
	if state.PendingDelete {
		return styles.HelpBar.Render(
			styles.HelpKey.Render("[y]") + " confirm delete  " +
				styles.HelpKey.Render("[Esc]") + " cancel",
		)
	}
	return styles.HelpBar.Render(
		styles.HelpKey.Render("[↑/↓]") + " select  " +
			styles.HelpKey.Render("[Space]") + " done  " +
			styles.HelpKey.Render("[n]") + " new  " +
			styles.HelpKey.Render("[e]") + " edit  " +
			styles.HelpKey.Render("[d]") + " delete  " +
			styles.HelpKey.Render("[Tab]") + " view  " +
			styles.HelpKey.Render("[/]") + " search  " +
			styles.HelpKey.Render("[s]") + " subject  " +
			styles.HelpKey.Render("[r]") + " reload  " +
			styles.HelpKey.Render("[Ctrl+L]") + " sign out  " +
			styles.HelpKey.Render("[q]") + " quit",
	)
}
