package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette - warm, photography-inspired
	primaryColor   = lipgloss.Color("#E8A87C") // warm orange
	secondaryColor = lipgloss.Color("#85DCB0") // mint green
	accentColor    = lipgloss.Color("#C38D9E") // dusty rose
	errorColor     = lipgloss.Color("#E85D75") // soft red
	mutedColor     = lipgloss.Color("#6B7280") // gray
	textColor      = lipgloss.Color("#F3F4F6") // light text
	dimTextColor   = lipgloss.Color("#9CA3AF") // dim text

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Italic(true)

	// File display styles
	fileNameStyle = lipgloss.NewStyle().
			Foreground(textColor)

	rawFileStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	rasterFileStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	dirStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	// Status indicators
	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Box styles for panels
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1)

	highlightBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1).
				MarginTop(1)

	// Exif panel stats
	statLabelStyle = lipgloss.NewStyle().
			Foreground(dimTextColor).
			Width(12)

	statValueStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	// Module-groups tab bar
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1F2937")).
			Background(primaryColor).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(dimTextColor).
				Padding(0, 1)

	disabledTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Faint(true).
				Padding(0, 1)

	moduleOnStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	moduleOffStyle = lipgloss.NewStyle().
			Foreground(textColor)

	moduleFocusStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	// Icon characters
	iconRAW      = "◆"
	iconRaster   = "◇"
	iconFolder   = "📁"
	iconSelected = "✓"
	iconError    = "✗"
	iconArrow    = "→"
	iconLibrary  = "★"
)
