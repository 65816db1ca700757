package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for wavprobe output
var (
	ColorPrimary   = lipgloss.Color("#0EA5E9") // Sky blue - main accent
	ColorSecondary = lipgloss.Color("#2DD4BF") // Teal - secondary accent

	ColorSuccess = lipgloss.Color("#22C55E") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red

	ColorText   = lipgloss.Color("#F8FAFC") // Bright white
	ColorMuted  = lipgloss.Color("#94A3B8") // Slate gray
	ColorSubtle = lipgloss.Color("#64748B") // Darker gray
)
