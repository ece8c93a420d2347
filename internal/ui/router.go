package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// keyHandler consumes a key message and may produce a command
type keyHandler func(tea.KeyMsg) tea.Cmd

// keyRouter owns the shell's single routable key subscription. While a
// handler is attached it receives every key before the shell's own
// bindings. Attach returns the matching release; at most one handler is
// active, and releasing a superseded handler is harmless.
type keyRouter struct {
	seq     int
	token   int
	handler keyHandler
}

// Attach claims key routing and returns the release function
func (r *keyRouter) Attach(h keyHandler) func() {
	r.seq++
	token := r.seq
	r.token = token
	r.handler = h
	return func() {
		if r.token == token {
			r.token = 0
			r.handler = nil
		}
	}
}

// Active reports whether a handler currently owns key routing
func (r *keyRouter) Active() bool {
	return r.handler != nil
}

// Handle forwards a key to the active handler. The second return is
// false when no handler is attached.
func (r *keyRouter) Handle(msg tea.KeyMsg) (tea.Cmd, bool) {
	if r.handler == nil {
		return nil, false
	}
	return r.handler(msg), true
}
