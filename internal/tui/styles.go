package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	textStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Phases
	workStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)
