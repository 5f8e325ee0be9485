package styles

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by the tui.theme config key.
const (
	ThemeDefault = "default"
	ThemeLight   = "light"
)

// ValidThemes returns the accepted theme names.
func ValidThemes() []string {
	return []string{ThemeDefault, ThemeLight}
}

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	for _, t := range ValidThemes() {
		if t == name {
			return true
		}
	}
	return false
}

// Apply switches the package-level palette to the named theme. Unknown
// names fall back to the default dark palette.
func Apply(name string) {
	switch name {
	case ThemeLight:
		PrimaryColor = lipgloss.Color("#6D28D9")
		SecondaryColor = lipgloss.Color("#047857")
		WarningColor = lipgloss.Color("#B45309")
		ErrorColor = lipgloss.Color("#B91C1C")
		MutedColor = lipgloss.Color("#6B7280")
		SurfaceColor = lipgloss.Color("#E5E7EB")
		TextColor = lipgloss.Color("#111827")
		BorderColor = lipgloss.Color("#9CA3AF")
	default:
		PrimaryColor = lipgloss.Color("#A78BFA")
		SecondaryColor = lipgloss.Color("#10B981")
		WarningColor = lipgloss.Color("#F59E0B")
		ErrorColor = lipgloss.Color("#F87171")
		MutedColor = lipgloss.Color("#9CA3AF")
		SurfaceColor = lipgloss.Color("#1F2937")
		TextColor = lipgloss.Color("#F9FAFB")
		BorderColor = lipgloss.Color("#6B7280")
	}
	rebuild()
}

// rebuild refreshes every derived style after a palette swap.
func rebuild() {
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	Subtitle = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)

	TabActive = lipgloss.NewStyle().Bold(true).Foreground(TextColor).Background(PrimaryColor).Padding(0, 2)
	TabInactive = lipgloss.NewStyle().Foreground(MutedColor).Padding(0, 2)

	RowSelected = lipgloss.NewStyle().Bold(true).Foreground(TextColor).Background(SurfaceColor)
	RowDone = lipgloss.NewStyle().Foreground(MutedColor).Strikethrough(true)
	OverdueBadge = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	PriorityBadge = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)

	ContentBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(BorderColor).Padding(1, 2)
	Header = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(BorderColor)
	StatValue = lipgloss.NewStyle().Bold(true).Foreground(TextColor)
	StatLabel = lipgloss.NewStyle().Foreground(MutedColor)

	HelpBar = lipgloss.NewStyle().Foreground(MutedColor).MarginTop(1)
	HelpKey = lipgloss.NewStyle().Bold(true).Foreground(SecondaryColor)
	ErrorText = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	ConfirmPrompt = lipgloss.NewStyle().Bold(true).Foreground(WarningColor)
}
