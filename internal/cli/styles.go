package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// styleSet holds the terminal styles used when printing parameters.
type styleSet struct {
	Title    lipgloss.Style
	Category lipgloss.Style
	Name     lipgloss.Style
	Value    lipgloss.Style
	Absent   lipgloss.Style
}

// newStyles returns the style set, plain when color is disabled in the
// config.
func newStyles() *styleSet {
	if !viper.GetBool("color") {
		plain := lipgloss.NewStyle()
		return &styleSet{Title: plain, Category: plain, Name: plain, Value: plain, Absent: plain}
	}
	return &styleSet{
		Title:    lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Name:     lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
		Value:    lipgloss.NewStyle(),
		Absent:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
