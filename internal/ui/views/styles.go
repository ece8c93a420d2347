package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	PaletteBox   lipgloss.Style
	QueryBox     lipgloss.Style
	RowSelected  lipgloss.Style
	Row          lipgloss.Style
	RowDesc      lipgloss.Style
	SmartValue   lipgloss.Style
	CopiedMark   lipgloss.Style
	EmptyState   lipgloss.Style
	StatusOK     lipgloss.Style
	StatusError  lipgloss.Style
	ToolCard     lipgloss.Style
	ToolCardMark lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		QueryBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		RowSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		Row:        lipgloss.NewStyle().Padding(0, 1),
		RowDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SmartValue: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		CopiedMark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		EmptyState: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		StatusOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		ToolCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginRight(1),
		ToolCardMark: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			MarginRight(1),
	}
}
