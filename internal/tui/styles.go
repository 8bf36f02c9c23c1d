package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	unpaidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	notificationStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("28")).
				Foreground(lipgloss.Color("230"))

	notificationErrorStyle = notificationStyle.Copy().
				Background(lipgloss.Color("124"))
)

// Tag style classes
const (
	tagClassHigh = "tag-high"
	tagClassMid  = "tag-mid"
	tagClassLow  = "tag-low"
)

var (
	tagStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("252"))

	tagClassStyles = map[string]lipgloss.Style{
		tagClassHigh: tagStyle.Copy().Background(lipgloss.Color("28")).Bold(true),
		tagClassMid:  tagStyle.Copy().Background(lipgloss.Color("136")),
		tagClassLow:  tagStyle.Copy().Background(lipgloss.Color("124")),
	}
)
