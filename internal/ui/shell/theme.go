package shell

import "github.com/charmbracelet/lipgloss"

// Theme is the shell color palette in ANSI 256-color codes.
type Theme struct {
	NormalText         lipgloss.Color
	FaintText          lipgloss.Color
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color
	HeaderForeground   lipgloss.Color
	SectionForeground  lipgloss.Color
	ErrorForeground    lipgloss.Color
	HelpText           lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("243"),
	SelectedBackground: lipgloss.Color("24"),
	SelectedForeground: lipgloss.Color("231"),
	HeaderForeground:   lipgloss.Color("75"),
	SectionForeground:  lipgloss.Color("180"),
	ErrorForeground:    lipgloss.Color("203"),
	HelpText:           lipgloss.Color("241"),
}
