package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPaletteOpened  EventType = "PaletteOpened"
	EventPaletteClosed  EventType = "PaletteClosed"
	EventToolLaunched   EventType = "ToolLaunched"
	EventResultCopied   EventType = "ResultCopied"
	EventClipboardError EventType = "ClipboardError"
	EventNotification   EventType = "Notification"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PaletteOpenedEvent is emitted on every Closed -> Open transition
type PaletteOpenedEvent struct {
	Session int
}

func (e PaletteOpenedEvent) Type() EventType { return EventPaletteOpened }

// PaletteClosedEvent is emitted on every Open -> Closed transition
type PaletteClosedEvent struct {
	Session int
}

func (e PaletteClosedEvent) Type() EventType { return EventPaletteClosed }

// ToolLaunchedEvent is emitted when a tool row is activated
type ToolLaunchedEvent struct {
	ToolID string
}

func (e ToolLaunchedEvent) Type() EventType { return EventToolLaunched }

// ResultCopiedEvent is emitted when a smart result lands on the clipboard
type ResultCopiedEvent struct {
	Kind  SmartKind
	Value string
}

func (e ResultCopiedEvent) Type() EventType { return EventResultCopied }

// ClipboardErrorEvent is emitted when a clipboard write fails
type ClipboardErrorEvent struct {
	Err error
}

func (e ClipboardErrorEvent) Type() EventType { return EventClipboardError }

// NotificationEvent carries a user-facing success/error message
type NotificationEvent struct {
	Kind    NotifyKind
	Title   string
	Message string
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// ConfigLoadedEvent is emitted when the configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when the configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
