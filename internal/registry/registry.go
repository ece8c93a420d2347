// Package registry holds the ordered collection of launchable tools shown
// in the palette. The order here is the order tool matches render in.
package registry

import (
	"miniq/internal/config"
	"miniq/internal/domain"
)

// Registry is an ordered, read-only collection of tools
type Registry struct {
	tools []domain.Tool
	byID  map[string]int
}

// New creates a registry from the given tools, preserving order.
// Later duplicates of an ID are dropped.
func New(tools []domain.Tool) *Registry {
	r := &Registry{
		byID: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		if _, exists := r.byID[t.ID]; exists {
			continue
		}
		r.byID[t.ID] = len(r.tools)
		r.tools = append(r.tools, t)
	}
	return r
}

// NewDefault creates the registry of built-in MiniIQ toolkit pages
func NewDefault() *Registry {
	return New(builtinTools())
}

// NewFromConfig creates the default registry with any user-defined tools
// from the config appended
func NewFromConfig(cfg *config.Config) *Registry {
	tools := builtinTools()
	for _, t := range cfg.ExtraTools {
		if t.ID == "" || t.Label == "" {
			continue
		}
		tools = append(tools, domain.Tool{
			ID:          t.ID,
			Label:       t.Label,
			Description: t.Description,
			Icon:        t.Icon,
		})
	}
	return New(tools)
}

// All returns the tools in registry order. The returned slice is a copy.
func (r *Registry) All() []domain.Tool {
	out := make([]domain.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Find returns the tool with the given ID
func (r *Registry) Find(id string) (domain.Tool, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Tool{}, false
	}
	return r.tools[i], true
}

// Len returns the number of registered tools
func (r *Registry) Len() int {
	return len(r.tools)
}

func builtinTools() []domain.Tool {
	return []domain.Tool{
		{ID: "column-converter", Label: "Column Converter", Description: "Convert pasted columns into delimited lists", Icon: "⚙️"},
		{ID: "date-normalizer", Label: "Date Normalizer", Description: "Normalize mixed date formats to one style", Icon: "📅"},
		{ID: "file-merger", Label: "File Merger", Description: "Merge spreadsheets and CSV files", Icon: "📂"},
		{ID: "diff-tool", Label: "Diff Tool", Description: "Compare two files or pasted blocks", Icon: "🔀"},
		{ID: "json-converter", Label: "JSON Converter", Description: "Convert tabular data to and from JSON", Icon: "🧾"},
		{ID: "template-mapper", Label: "Template Mapper", Description: "Map columns into a text template", Icon: "🗺️"},
		{ID: "sql-transformer", Label: "SQL Transformer", Description: "Turn pasted lists into SQL clauses", Icon: "🗄️"},
		{ID: "zip-bundler", Label: "Zip Bundler", Description: "Bundle and extract zip archives", Icon: "🗜️"},
		{ID: "qr-generator", Label: "QR Generator", Description: "Generate QR codes from text or links", Icon: "🔳"},
		{ID: "profiler", Label: "Data Profiler", Description: "Profile columns for types and gaps", Icon: "📊"},
	}
}
