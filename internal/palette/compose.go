package palette

import (
	"strings"

	"miniq/internal/domain"
)

// Row is one entry of the composed palette list: either a smart result
// or a tool match, never both.
type Row struct {
	Smart *domain.SmartResult
	Tool  *domain.Tool
}

// IsSmart reports whether the row carries a smart result
func (r Row) IsSmart() bool { return r.Smart != nil }

// ID returns the row identifier used for copied-marker tracking
func (r Row) ID() string {
	if r.Smart != nil {
		return r.Smart.ResultID()
	}
	return "tool:" + r.Tool.ID
}

// Compose builds the ordered palette list for a query: smart results
// first, in recognizer order, then tool matches in registry order.
// It is a pure function of its inputs: no side effects, deterministic
// for a fixed clock and identifier source, and an empty query yields
// the full registry with no smart results.
func Compose(query string, tools []domain.Tool) []Row {
	var rows []Row
	for _, sr := range Recognize(query) {
		sr := sr
		rows = append(rows, Row{Smart: &sr})
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range tools {
		if q == "" ||
			strings.Contains(strings.ToLower(tools[i].Label), q) ||
			strings.Contains(strings.ToLower(tools[i].Description), q) {
			rows = append(rows, Row{Tool: &tools[i]})
		}
	}
	return rows
}
