package palette

import (
	"miniq/internal/domain"
	"miniq/internal/notify"
)

// Engine owns the palette's open/closed lifecycle and its per-session
// state: the query, the composed row list, the cursor and the copied
// marker. All state is reset on every open and discarded on close;
// nothing carries across sessions.
//
// The engine is single-threaded by contract: every method must be called
// from the host's event loop. The only asynchronous collaborator is the
// auto-close timer, which the host schedules via ArmClose and completes
// by calling ExpireCopy with the session it was armed in.
type Engine struct {
	tools []domain.Tool

	open    bool
	session int // bumped on every transition; stale timers fail the check

	query  string
	cursor Cursor
	rows   []Row
	copied string // Row.ID() of the result inside its confirmation window

	attach      func() (detach func())
	detach      func()
	notifier    notify.Notifier
	onSelect    func(toolID string)
	onClose     func()
	onCopy      func(kind domain.SmartKind, value string)
	onCopyError func(err error)
	armClose    func(session int)
}

// Options configures an Engine. All callbacks are optional; the host
// shell supplies the ones it cares about.
type Options struct {
	// Tools is the host-supplied registry, in display order.
	Tools []domain.Tool
	// AttachListener claims the keyboard subscription for an open
	// session and returns the matching release. Called exactly once per
	// open; the release is called exactly once per close.
	AttachListener func() (detach func())
	// Notifier receives copy success/failure feedback.
	Notifier notify.Notifier
	// OnSelect is invoked with the tool ID when a tool row is activated.
	OnSelect func(toolID string)
	// OnClose is invoked after every Open -> Closed transition.
	OnClose func()
	// OnCopy is invoked after a smart result lands on the clipboard.
	OnCopy func(kind domain.SmartKind, value string)
	// OnCopyError is invoked when a clipboard write fails.
	OnCopyError func(err error)
	// ArmClose schedules ExpireCopy(session) after the copy
	// confirmation window.
	ArmClose func(session int)
}

// NewEngine creates a closed engine over the given tools
func NewEngine(opts Options) *Engine {
	tools := make([]domain.Tool, len(opts.Tools))
	copy(tools, opts.Tools)
	return &Engine{
		tools:       tools,
		attach:      opts.AttachListener,
		notifier:    opts.Notifier,
		onSelect:    opts.OnSelect,
		onClose:     opts.OnClose,
		onCopy:      opts.OnCopy,
		onCopyError: opts.OnCopyError,
		armClose:    opts.ArmClose,
	}
}

// Open transitions Closed -> Open: resets query, cursor and copied
// marker, recomposes the idle list and attaches the keyboard listener.
// Opening an already-open engine is a no-op.
func (e *Engine) Open() {
	if e.open {
		return
	}
	e.open = true
	e.session++
	e.query = ""
	e.cursor.Reset()
	e.copied = ""
	e.rows = Compose("", e.tools)
	if e.attach != nil {
		e.detach = e.attach()
	}
}

// Close transitions Open -> Closed: releases the keyboard listener and
// invalidates any pending copy timer. Closing a closed engine is a no-op.
func (e *Engine) Close() {
	if !e.open {
		return
	}
	e.open = false
	e.session++
	e.copied = ""
	if e.detach != nil {
		e.detach()
		e.detach = nil
	}
	if e.onClose != nil {
		e.onClose()
	}
}

// IsOpen reports whether the palette is open
func (e *Engine) IsOpen() bool { return e.open }

// Session returns the current session generation. Timers armed for an
// older session are stale.
func (e *Engine) Session() int { return e.session }

// SetQuery replaces the query, resets the cursor and recomposes the
// list. Ignored while closed.
func (e *Engine) SetQuery(query string) {
	if !e.open {
		return
	}
	e.query = query
	e.cursor.Reset()
	e.rows = Compose(query, e.tools)
}

// Query returns the current query
func (e *Engine) Query() string { return e.query }

// Rows returns the composed list for the current query
func (e *Engine) Rows() []Row { return e.rows }

// Index returns the highlighted row index
func (e *Engine) Index() int { return e.cursor.Index() }

// CopiedID returns the row ID inside its copy confirmation window, or ""
func (e *Engine) CopiedID() string { return e.copied }

// MoveDown advances the selection with wrap-around
func (e *Engine) MoveDown() {
	if !e.open {
		return
	}
	e.cursor.Next(len(e.rows))
}

// MoveUp moves the selection back with wrap-around
func (e *Engine) MoveUp() {
	if !e.open {
		return
	}
	e.cursor.Prev(len(e.rows))
}

// Hover points the selection directly at row i
func (e *Engine) Hover(i int) {
	if !e.open {
		return
	}
	e.cursor.Set(i, len(e.rows))
}

// ExpireCopy completes the copy confirmation window armed in the given
// session: it clears the copied marker and closes the palette. A stale
// session (the palette closed or reopened since arming) is a no-op, so
// an old timer can never mutate a newer session.
func (e *Engine) ExpireCopy(session int) {
	if !e.open || session != e.session {
		return
	}
	e.copied = ""
	e.Close()
}
