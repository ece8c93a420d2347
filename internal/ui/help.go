package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// HelpOps shows the help screen through the ov pager
type HelpOps struct {
	program *tea.Program
}

// NewHelpOps creates a new help operations handler
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal handoff
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// showHelpCmd returns a command that pages the help content
func (m *Model) showHelpCmd() tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent())}
	}
}

// ShowHelpInPager shows help content using the ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(helpContent)
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// helpContent builds the keybinding and smart-action reference
func helpContent() string {
	var b strings.Builder

	b.WriteString("MiniIQ Toolkit Help\n")
	b.WriteString("===================\n\n")

	b.WriteString("Launcher\n")
	b.WriteString("  ctrl+k, /    open the palette\n")
	b.WriteString("  ?            this help (q to leave the pager)\n")
	b.WriteString("  q, esc       quit\n\n")

	b.WriteString("Palette\n")
	b.WriteString("  type         filter tools by name or description\n")
	b.WriteString("  up/down      move selection (wraps around)\n")
	b.WriteString("  enter        launch tool, or copy a smart result\n")
	b.WriteString("  esc          close without doing anything\n\n")

	b.WriteString("Smart actions\n")
	b.WriteString("  2+2, 3*(4+5)   inline calculation, result is copied on enter\n")
	b.WriteString("  #1a2b3c, #fff  hex color to rgb(r, g, b)\n")
	b.WriteString("  uuid, guid, id fresh version-4 UUID\n")
	b.WriteString("  time, now, date current instant, ISO-8601 UTC\n\n")

	b.WriteString("Smart results are copied to the clipboard; the palette closes\n")
	b.WriteString("on its own shortly after the Copied confirmation appears.\n")

	return b.String()
}
