package cli

import "github.com/charmbracelet/lipgloss"

var (
	// successStyle is for positive summary lines.
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// warningStyle is for skipped-module summaries.
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
