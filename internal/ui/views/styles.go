package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Border      lipgloss.Style
	SearchTitle lipgloss.Style
	ListTitle   lipgloss.Style
	HelpTitle   lipgloss.Style
	Query       lipgloss.Style
	Category    lipgloss.Style
	Command     lipgloss.Style
	Description lipgloss.Style
	Highlight   lipgloss.Style
	Status      lipgloss.Style
	Scroll      lipgloss.Style
	Empty       lipgloss.Style
	HelpBody    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")), // yellow
		ListTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")), // cyan
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Highlight: lipgloss.NewStyle().
			Background(lipgloss.Color("4")).
			Foreground(lipgloss.Color("15")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:    lipgloss.NewStyle().Faint(true),
		HelpBody: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
}
