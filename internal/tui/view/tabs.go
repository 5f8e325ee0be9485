package view

import (
	"strings"

	"github.com/ElizavetaFed/Task-Manager2025/internal/task"
	"github.com/ElizavetaFed/Task-Manager2025/internal/tui/styles"
)

// TabsState holds the state needed to render the filter tab strip.
type TabsState struct {
	// Active is the currently selected view mode.
	Active task.View

	// Query and Subject echo the active text filters next to the tabs.
	Query   string
	Subject string
}

// TabsView renders the view-mode tabs with the active text filters.
type TabsView struct{}

// NewTabsView creates a new TabsView instance.
func NewTabsView() *TabsView {
	return &TabsView{}
}

// Render renders the tab strip.
func (v *TabsView) Render(state TabsState) string {
	var parts []string
	for _, mode := range task.Views() {
		style := styles.TabInactive
		if mode == state.Active {
			style = styles.TabActive
		}
		parts = append(parts, style.Render(mode.Label()))
	}
	line := strings.Join(parts, " ")

	var filters []string
	if state.Query != "" {
		filters = append(filters, "title: "+state.Query)
	}
	if state.Subject != "" {
		filters = append(filters, "subject: "+state.Subject)
	}
	if len(filters) > 0 {
		line += "  " + styles.Muted.Render(strings.Join(filters, ", "))
	}
	return line
}
