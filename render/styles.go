// File: styles.go
// Role: lipgloss styles shared by the interactive session. Kept apart from
//       the plain formatters so golden tests stay byte-exact.

package render

import "github.com/charmbracelet/lipgloss"

// Styles for the interactive session view.
var (
	// TitleStyle highlights state banners.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	// PromptStyle marks the active input line.
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	// ErrorStyle marks recoverable input errors before a re-prompt.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// NoticeStyle marks informational session messages.
	NoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// SubtleStyle dims help and key hints.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
