package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI
var Styles = struct {
	Bold        lipgloss.Style
	Assistant   lipgloss.Style
	User        lipgloss.Style
	TableHeader lipgloss.Style
	OutOfStock  lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Assistant: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")),

	User: lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	OutOfStock: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),
}
