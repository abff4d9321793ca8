package command

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	playingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
)
