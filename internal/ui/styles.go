package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorError     = lipgloss.Color("196") // Red
)

// TitleBar style for the screen header.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// SelectedItem style for the currently highlighted item.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected items.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// SourceBadge style for source name badges.
var SourceBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Padding(0, 1)

// Subheader style for the "N items" line.
var Subheader = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// FilterChip style for inactive filter chips.
var FilterChip = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// FilterChipActive style for the selected filter chip.
var FilterChipActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar. Shares the bar's
// background so the inline render doesn't break the bar fill.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Background(lipgloss.Color("236")).
	Bold(true)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(colorError).
	Bold(true).
	Padding(0, 1)

// SuccessStyle for confirmations.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Padding(0, 1)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)
