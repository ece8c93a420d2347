package domain

// Icon is an opaque rendering reference supplied by the host shell.
// The palette engine forwards it unchanged and never inspects it.
type Icon any

// Tool represents a launchable toolkit page
type Tool struct {
	ID          string
	Label       string
	Description string
	Icon        Icon
}

// SmartKind identifies which recognizer produced a smart result
type SmartKind string

const (
	SmartCalculation SmartKind = "calculation"
	SmartColor       SmartKind = "color"
	SmartIdentifier  SmartKind = "identifier"
	SmartTimestamp   SmartKind = "timestamp"
)

// SmartResult is a computed, non-tool palette result. Its bound action
// copies DisplayValue to the clipboard and closes the palette after a
// short confirmation window.
type SmartResult struct {
	Kind         SmartKind
	RawQuery     string // trimmed query that produced the result
	DisplayValue string
}

// ResultID returns a stable identifier used for copied-marker tracking
func (r SmartResult) ResultID() string {
	return "smart:" + string(r.Kind)
}

// NotifyKind classifies a user-facing notification
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)
