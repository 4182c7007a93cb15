package colors

import "github.com/charmbracelet/lipgloss"

// Styles for bubbletea views. These use ANSI palette indices so they track
// the user's terminal theme; see SetupBackgroundColorTypeFromEnv for the
// light/dark override.
var (
	ProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	QuestionStyle = lipgloss.NewStyle().Bold(true)
	FaintStyle    = lipgloss.NewStyle().Faint(true)
)
