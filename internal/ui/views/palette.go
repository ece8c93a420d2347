package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"miniq/internal/domain"
	"miniq/internal/palette"
)

// PaletteData is everything the palette overlay needs to render one frame
type PaletteData struct {
	QueryView       string // rendered text input
	Query           string // raw query, echoed in the empty state
	Rows            []palette.Row
	Index           int
	CopiedID        string
	ShowIcons       bool
	ShowDescription bool
	MaxRows         int
	Width           int
	Height          int
}

// PaletteRenderer renders the command palette overlay
type PaletteRenderer struct {
	styles *Styles
}

// NewPaletteRenderer creates a new palette renderer
func NewPaletteRenderer(styles *Styles) *PaletteRenderer {
	return &PaletteRenderer{styles: styles}
}

// Render draws the palette centered on the screen
func (pr *PaletteRenderer) Render(d PaletteData) string {
	boxWidth := d.Width - 20
	if boxWidth > 72 {
		boxWidth = 72
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	innerWidth := boxWidth - 6

	var content strings.Builder

	content.WriteString(pr.styles.Title.Render("MiniIQ Palette"))
	content.WriteString("\n")
	content.WriteString(pr.styles.QueryBox.Width(innerWidth).Render(d.QueryView))
	content.WriteString("\n\n")

	if len(d.Rows) == 0 {
		content.WriteString(pr.styles.EmptyState.Render(fmt.Sprintf("No matches for %q", d.Query)))
	} else {
		start, end := rowWindow(len(d.Rows), d.Index, d.MaxRows)
		for i := start; i < end; i++ {
			content.WriteString(pr.renderRow(d, i, innerWidth))
			if i < end-1 {
				content.WriteString("\n")
			}
		}
		if end < len(d.Rows) {
			content.WriteString("\n")
			content.WriteString(pr.styles.Dim.Render(fmt.Sprintf("  … %d more", len(d.Rows)-end)))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(pr.styles.Help.Render("↑↓ navigate · enter run/copy · esc close"))

	box := pr.styles.PaletteBox.Width(boxWidth).Render(content.String())
	return lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, box)
}

func (pr *PaletteRenderer) renderRow(d PaletteData, i, width int) string {
	row := d.Rows[i]
	selected := i == d.Index

	var line string
	if row.IsSmart() {
		value := pr.styles.SmartValue.Render(row.Smart.DisplayValue)
		label := smartLabel(row.Smart.Kind)
		if d.CopiedID == row.ID() {
			label = pr.styles.CopiedMark.Render("Copied ✓")
		} else {
			label = pr.styles.RowDesc.Render(label)
		}
		line = value + "  " + label
	} else {
		line = row.Tool.Label
		if d.ShowIcons {
			line = iconText(row.Tool.Icon) + " " + line
		}
		if d.ShowDescription && row.Tool.Description != "" {
			line += "  " + pr.styles.RowDesc.Render(row.Tool.Description)
		}
	}

	if selected {
		return pr.styles.RowSelected.Width(width).Render("▶ " + line)
	}
	return pr.styles.Row.Width(width).Render("  " + line)
}

// rowWindow returns the half-open visible range keeping index in view
func rowWindow(length, index, max int) (int, int) {
	if max <= 0 || length <= max {
		return 0, length
	}
	start := index - max + 1
	if start < 0 {
		start = 0
	}
	if start+max > length {
		start = length - max
	}
	return start, start + max
}

func smartLabel(kind domain.SmartKind) string {
	switch kind {
	case domain.SmartCalculation:
		return "Calculation"
	case domain.SmartColor:
		return "Color"
	case domain.SmartIdentifier:
		return "UUID v4"
	case domain.SmartTimestamp:
		return "Timestamp"
	default:
		return string(kind)
	}
}

// iconText renders the host-owned icon glyph. Icons are opaque to the
// engine; only this rendering boundary interprets them.
func iconText(icon domain.Icon) string {
	if s, ok := icon.(string); ok && s != "" {
		return s
	}
	return "•"
}
