package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"miniq/internal/domain"
)

// HomeData is the state of the main launcher screen
type HomeData struct {
	Tools      []domain.Tool
	ActiveTool string // ID of the last launched tool, "" for none
	Status     string
	StatusErr  bool
	ShowIcons  bool
	Width      int
	Height     int
}

// HomeRenderer renders the launcher screen behind the palette
type HomeRenderer struct {
	styles *Styles
}

// NewHomeRenderer creates a new home renderer
func NewHomeRenderer(styles *Styles) *HomeRenderer {
	return &HomeRenderer{styles: styles}
}

// Render draws the tool directory with the status line at the bottom
func (hr *HomeRenderer) Render(d HomeData) string {
	var b strings.Builder

	b.WriteString(hr.styles.Title.Render("MiniIQ Toolkit"))
	b.WriteString("\n")
	b.WriteString(hr.styles.Subtitle.Render("Clean, fast data utilities. Press ctrl+k to search, ? for help."))
	b.WriteString("\n\n")

	b.WriteString(hr.renderCards(d))

	if d.ActiveTool != "" {
		b.WriteString("\n")
		b.WriteString(hr.styles.Dim.Render("Opening " + d.ActiveTool + "… (tool pages are served by the MiniIQ backend)"))
	}

	if d.Status != "" {
		b.WriteString("\n\n")
		if d.StatusErr {
			b.WriteString(hr.styles.StatusError.Render(d.Status))
		} else {
			b.WriteString(hr.styles.StatusOK.Render(d.Status))
		}
	}

	return hr.styles.Main.Render(b.String())
}

func (hr *HomeRenderer) renderCards(d HomeData) string {
	perRow := 2
	if d.Width >= 110 {
		perRow = 3
	}

	var rows []string
	var current []string
	for _, tool := range d.Tools {
		label := tool.Label
		if d.ShowIcons {
			label = iconText(tool.Icon) + " " + label
		}
		card := label + "\n" + hr.styles.RowDesc.Render(tool.Description)

		style := hr.styles.ToolCard
		if tool.ID == d.ActiveTool {
			style = hr.styles.ToolCardMark
		}
		current = append(current, style.Width(34).Render(card))

		if len(current) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(rows, "\n")
}
