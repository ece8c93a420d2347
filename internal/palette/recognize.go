package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"miniq/internal/domain"
)

// Recognizer classifies a trimmed, non-empty query into an optional
// smart result. Recognizers are pure and never fail loudly: anything
// they cannot parse is a non-match.
type Recognizer func(query string) (domain.SmartResult, bool)

var (
	arithmeticRe = regexp.MustCompile(`^[0-9+\-*/().\s]+$`)
	hexColorRe   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Package-level variables to allow mocking in tests
var (
	newIdentifier = uuid.NewString
	timeNow       = time.Now
)

var numberPrinter = message.NewPrinter(language.English)

// recognizers returns the chain in fixed priority order. All of them run
// against every query; every match is kept, in this order.
func recognizers() []Recognizer {
	return []Recognizer{
		recognizeCalculation,
		recognizeColor,
		recognizeIdentifier,
		recognizeTimestamp,
	}
}

// Recognize trims the query and runs the full recognizer chain.
// An empty (or all-whitespace) query matches nothing.
func Recognize(query string) []domain.SmartResult {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	var results []domain.SmartResult
	for _, recognize := range recognizers() {
		if res, ok := recognize(trimmed); ok {
			results = append(results, res)
		}
	}
	return results
}

// recognizeCalculation matches restricted arithmetic expressions and
// evaluates them. Parse failures, division by zero and non-finite
// results are silent non-matches.
func recognizeCalculation(query string) (domain.SmartResult, bool) {
	if !arithmeticRe.MatchString(query) || !strings.ContainsAny(query, "0123456789") {
		return domain.SmartResult{}, false
	}
	v, err := evalArithmetic(query)
	if err != nil {
		return domain.SmartResult{}, false
	}
	return domain.SmartResult{
		Kind:         domain.SmartCalculation,
		RawQuery:     query,
		DisplayValue: "= " + formatNumber(v),
	}, true
}

// recognizeColor matches #rgb and #rrggbb hex colors and converts them
// to their rgb(r, g, b) form. 3-digit shorthand expands by digit doubling.
func recognizeColor(query string) (domain.SmartResult, bool) {
	if !hexColorRe.MatchString(query) {
		return domain.SmartResult{}, false
	}
	hex := query[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return domain.SmartResult{
		Kind:         domain.SmartColor,
		RawQuery:     query,
		DisplayValue: fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
	}, true
}

// recognizeIdentifier matches the uuid/guid/id keywords and generates a
// fresh RFC 4122 version-4 UUID.
func recognizeIdentifier(query string) (domain.SmartResult, bool) {
	switch strings.ToLower(query) {
	case "uuid", "guid", "id":
	default:
		return domain.SmartResult{}, false
	}
	return domain.SmartResult{
		Kind:         domain.SmartIdentifier,
		RawQuery:     query,
		DisplayValue: newIdentifier(),
	}, true
}

// recognizeTimestamp matches the time/now/date keywords and produces the
// current instant as ISO-8601 UTC with millisecond precision.
func recognizeTimestamp(query string) (domain.SmartResult, bool) {
	switch strings.ToLower(query) {
	case "time", "now", "date":
	default:
		return domain.SmartResult{}, false
	}
	return domain.SmartResult{
		Kind:         domain.SmartTimestamp,
		RawQuery:     query,
		DisplayValue: timeNow().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}, true
}

// formatNumber renders a numeric result with locale-aware grouping,
// e.g. 12000 -> "12,000".
func formatNumber(v float64) string {
	return numberPrinter.Sprintf("%v", number.Decimal(v))
}
