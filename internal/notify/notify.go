// Package notify is the notification center boundary: components report
// success and error feedback here, the UI decides how to show it.
package notify

import (
	"miniq/internal/domain"
	"miniq/internal/eventbus"
)

// Notifier is the interface components use to surface user-facing
// feedback
type Notifier interface {
	Notify(kind domain.NotifyKind, title, message string)
}

// Func adapts a plain function to the Notifier interface
type Func func(kind domain.NotifyKind, title, message string)

func (f Func) Notify(kind domain.NotifyKind, title, message string) {
	f(kind, title, message)
}

// Center publishes notifications on the event bus for subscribers
// (the UI status line) to render
type Center struct {
	bus eventbus.EventBus
}

// NewCenter creates a notification center backed by the event bus
func NewCenter(bus eventbus.EventBus) *Center {
	return &Center{bus: bus}
}

func (c *Center) Notify(kind domain.NotifyKind, title, message string) {
	c.bus.Publish(eventbus.NotificationEvent{
		Kind:    kind,
		Title:   title,
		Message: message,
	})
}
