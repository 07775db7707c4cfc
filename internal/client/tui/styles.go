// Package tui is the full-screen passkeeper frontend built on bubbletea.
// This file defines the shared lipgloss styles.
package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorSpecial   = lipgloss.Color("208")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(colorSubtle)

	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	iconStyle         = lipgloss.NewStyle().Foreground(colorSpecial).Bold(true)
	detailLabelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1).
			MarginTop(1)
)
