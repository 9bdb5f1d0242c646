package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Base    lipgloss.Style
	Banner  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Input   lipgloss.Style
	Focused lipgloss.Style
	Button  lipgloss.Style
	Active  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style
}

var DefaultTheme = Theme{
	Base:    lipgloss.NewStyle().Margin(1, 2),
	Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginBottom(1),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Input:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(50),
	Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
	Button:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 2).MarginRight(2),
	Active:  lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true).Padding(0, 2).MarginRight(2),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
}
