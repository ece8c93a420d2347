package palette

import (
	"github.com/atotto/clipboard"

	"miniq/internal/domain"
)

// writeClipboard is a package-level variable to allow mocking in tests.
var writeClipboard = clipboard.WriteAll

// Activate executes the action bound to the highlighted row
func (e *Engine) Activate() {
	e.activate(e.cursor.Index())
}

// ActivateAt moves the selection to row i and activates it in one step
// (a row click)
func (e *Engine) ActivateAt(i int) {
	if !e.open {
		return
	}
	e.cursor.Set(i, len(e.rows))
	e.activate(e.cursor.Index())
}

// activate dispatches the row action. Against an empty list it is a safe
// no-op: no callback runs and nothing closes.
func (e *Engine) activate(i int) {
	if !e.open || len(e.rows) == 0 || i < 0 || i >= len(e.rows) {
		return
	}
	row := e.rows[i]

	if row.Tool != nil {
		if e.onSelect != nil {
			e.onSelect(row.Tool.ID)
		}
		e.Close()
		return
	}

	// Smart result: copy, confirm, then auto-close. A failed clipboard
	// write is reported and leaves the palette open and operable.
	value := row.Smart.DisplayValue
	if err := writeClipboard(value); err != nil {
		if e.notifier != nil {
			e.notifier.Notify(domain.NotifyError, "Clipboard", "Could not copy: "+err.Error())
		}
		if e.onCopyError != nil {
			e.onCopyError(err)
		}
		return
	}
	e.copied = row.ID()
	if e.notifier != nil {
		e.notifier.Notify(domain.NotifySuccess, "Copied", value)
	}
	if e.onCopy != nil {
		e.onCopy(row.Smart.Kind, value)
	}
	if e.armClose != nil {
		e.armClose(e.session)
	}
}
