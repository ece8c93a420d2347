package ui

import (
	"miniq/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// copyExpiredMsg fires when a copy confirmation window elapses. Session
// identifies the palette session the timer was armed in; the engine
// ignores stale sessions.
type copyExpiredMsg struct {
	session int
}

// clearStatusMsg clears the transient status line. Seq guards against a
// newer message being wiped by an older timer.
type clearStatusMsg struct {
	seq int
}

// helpPagerMsg contains the result of showing the help pager
type helpPagerMsg struct {
	err error
}
