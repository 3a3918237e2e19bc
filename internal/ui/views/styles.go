package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Prospective lipgloss.Style
	Dragging    lipgloss.Style
	Flash       lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	PageTitle   lipgloss.Style
	PageBody    lipgloss.Style
	Highlight   lipgloss.Style
	Weekend     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prospective: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Dragging:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),              // cyan
		Flash:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),              // green
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),             // red
		Help:        lipgloss.NewStyle().Faint(true),
		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		PageBody:  lipgloss.NewStyle().Padding(0, 1),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Weekend:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
