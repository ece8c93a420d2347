package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"miniq/internal/config"
	"miniq/internal/domain"
	"miniq/internal/eventbus"
	"miniq/internal/notify"
	"miniq/internal/palette"
	"miniq/internal/registry"
	"miniq/internal/ui/views"
)

// statusLinger is how long a notification stays on the status line
const statusLinger = 2500 * time.Millisecond

// Model represents the UI state: the launcher screen plus the palette
// engine and its key-routing subscription.
type Model struct {
	bus eventbus.EventBus
	cfg *config.Config
	reg *registry.Registry

	engine *palette.Engine
	router keyRouter
	input  textinput.Model

	width  int
	height int

	status     string
	statusErr  bool
	statusSeq  int
	activeTool string

	styles      *views.Styles
	paletteView *views.PaletteRenderer
	homeView    *views.HomeRenderer
	helpOps     *HelpOps

	// commands produced by engine callbacks while an Update is running
	pending []tea.Cmd

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, reg *registry.Registry) *Model {
	styles := views.NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Search tools, or try 2+2 · #1a2b3c · uuid · now"
	ti.Prompt = " "

	m := &Model{
		bus:         bus,
		cfg:         cfg,
		reg:         reg,
		input:       ti,
		styles:      styles,
		paletteView: views.NewPaletteRenderer(styles),
		homeView:    views.NewHomeRenderer(styles),
		helpOps:     NewHelpOps(),
	}

	window := time.Duration(cfg.UISettings.ConfirmWindowMs) * time.Millisecond
	m.engine = palette.NewEngine(palette.Options{
		Tools:          reg.All(),
		AttachListener: func() func() { return m.router.Attach(m.handlePaletteKey) },
		Notifier:       notify.NewCenter(bus),
		OnSelect: func(toolID string) {
			m.activeTool = toolID
			bus.Publish(eventbus.ToolLaunchedEvent{ToolID: toolID})
		},
		OnClose: func() {
			m.input.Blur()
			bus.Publish(eventbus.PaletteClosedEvent{Session: m.engine.Session()})
		},
		OnCopy: func(kind domain.SmartKind, value string) {
			bus.Publish(eventbus.ResultCopiedEvent{Kind: kind, Value: value})
		},
		OnCopyError: func(err error) {
			bus.Publish(eventbus.ClipboardErrorEvent{Err: err})
		},
		ArmClose: func(session int) {
			m.pending = append(m.pending, tea.Tick(window, func(time.Time) tea.Msg {
				return copyExpiredMsg{session: session}
			}))
		},
	})

	return m
}

// SetProgram stores the program reference for terminal handoff (help pager)
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m, m.collect(m.handleKey(msg))

	case copyExpiredMsg:
		m.engine.ExpireCopy(msg.session)
		return m, m.collect(nil)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case EventMsg:
		return m, m.collect(m.handleEvent(msg.Event))

	case helpPagerMsg:
		if msg.err != nil {
			return m, m.setStatus("Help pager failed: "+msg.err.Error(), true)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes a key press: the palette owns routing while open,
// everything else falls through to the shell bindings.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if cmd, handled := m.router.Handle(msg); handled {
		return cmd
	}

	switch msg.String() {
	case "ctrl+k", "/":
		return m.openPalette()
	case "?":
		return m.showHelpCmd()
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

// handlePaletteKey is the handler attached to the key router for the
// lifetime of one open palette session
func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.engine.Close()
		return nil
	case "down", "ctrl+n":
		m.engine.MoveDown()
		return nil
	case "up", "ctrl+p":
		m.engine.MoveUp()
		return nil
	case "enter":
		m.engine.Activate()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.engine.Query() {
		m.engine.SetQuery(m.input.Value())
	}
	return cmd
}

// openPalette transitions the palette to Open and focuses the query input
func (m *Model) openPalette() tea.Cmd {
	if m.engine.IsOpen() {
		return nil
	}
	m.engine.Open()
	m.input.Reset()
	m.input.Focus()
	m.bus.Publish(eventbus.PaletteOpenedEvent{Session: m.engine.Session()})
	return textinput.Blink
}

// handleEvent processes forwarded domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NotificationEvent:
		return m.setStatus(e.Title+": "+e.Message, e.Kind == domain.NotifyError)
	case eventbus.ToolLaunchedEvent:
		m.activeTool = e.ToolID
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// setStatus shows a transient status line message
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// collect batches a command with anything engine callbacks queued up
// during this Update
func (m *Model) collect(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := m.pending
	m.pending = nil
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.engine.IsOpen() {
		return m.paletteView.Render(views.PaletteData{
			QueryView:       m.input.View(),
			Query:           m.engine.Query(),
			Rows:            m.engine.Rows(),
			Index:           m.engine.Index(),
			CopiedID:        m.engine.CopiedID(),
			ShowIcons:       m.cfg.UISettings.ShowIcons,
			ShowDescription: m.cfg.UISettings.ShowDescription,
			MaxRows:         m.cfg.UISettings.MaxVisibleRows,
			Width:           m.width,
			Height:          m.height,
		})
	}

	return m.homeView.Render(views.HomeData{
		Tools:      m.reg.All(),
		ActiveTool: m.activeTool,
		Status:     m.status,
		StatusErr:  m.statusErr,
		ShowIcons:  m.cfg.UISettings.ShowIcons,
		Width:      m.width,
		Height:     m.height,
	})
}
