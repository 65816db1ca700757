package tui

import "github.com/charmbracelet/lipgloss"

// Styles for command output
var (
	// Heading style for input names above rendered headers
	StyleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// OK marker for validate results
	StyleOK = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	// Fail marker for validate results
	StyleFail = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
