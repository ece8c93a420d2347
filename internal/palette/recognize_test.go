package palette

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniq/internal/domain"
)

var uuidV4Re = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func findKind(results []domain.SmartResult, kind domain.SmartKind) (domain.SmartResult, bool) {
	for _, r := range results {
		if r.Kind == kind {
			return r, true
		}
	}
	return domain.SmartResult{}, false
}

func TestRecognizeCalculation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"2+2", "= 4"},
		{"3*(4+5)", "= 27"},
		{" 2+2 ", "= 4"},
		{"12000", "= 12,000"},
		{"3000*4", "= 12,000"},
		{"10/4", "= 2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, ok := findKind(Recognize(tt.query), domain.SmartCalculation)
			require.True(t, ok, "expected a calculation result")
			assert.Equal(t, tt.want, res.DisplayValue)
		})
	}
}

func TestRecognizeCalculationRejects(t *testing.T) {
	tests := []string{
		"10/0",    // non-finite rejected
		"abc",     // wrong character class
		"2+2=",    // '=' not allowed
		"+-*/",    // no digit
		"1,000+1", // comma not allowed
		"",
		"   ",
	}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			_, ok := findKind(Recognize(query), domain.SmartCalculation)
			assert.False(t, ok)
		})
	}
}

func TestRecognizeColor(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"#fff", "rgb(255, 255, 255)"},
		{"#FFF", "rgb(255, 255, 255)"},
		{"#000", "rgb(0, 0, 0)"},
		{"#abc", "rgb(170, 187, 204)"},
		{"#1a2b3c", "rgb(26, 43, 60)"},
		{"#1A2B3C", "rgb(26, 43, 60)"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, ok := findKind(Recognize(tt.query), domain.SmartColor)
			require.True(t, ok, "expected a color result")
			assert.Equal(t, tt.want, res.DisplayValue)
			assert.Equal(t, tt.query, res.RawQuery)
		})
	}
}

func TestRecognizeColorRejects(t *testing.T) {
	tests := []string{"#gg0000", "#12", "#1234", "#12345", "#1234567", "fff", "#"}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			_, ok := findKind(Recognize(query), domain.SmartColor)
			assert.False(t, ok)
		})
	}
}

func TestRecognizeIdentifier(t *testing.T) {
	for _, query := range []string{"uuid", "UUID", "guid", "Guid", "id", "ID"} {
		t.Run(query, func(t *testing.T) {
			res, ok := findKind(Recognize(query), domain.SmartIdentifier)
			require.True(t, ok, "expected an identifier result")
			assert.Regexp(t, uuidV4Re, res.DisplayValue)
		})
	}

	_, ok := findKind(Recognize("uuid4"), domain.SmartIdentifier)
	assert.False(t, ok, "keyword match must be exact")
}

func TestRecognizeTimestamp(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time {
		return time.Date(2026, 8, 30, 12, 34, 56, 789_000_000, time.FixedZone("CEST", 2*3600))
	}
	defer func() { timeNow = restore }()

	for _, query := range []string{"time", "now", "date", "NOW"} {
		t.Run(query, func(t *testing.T) {
			res, ok := findKind(Recognize(query), domain.SmartTimestamp)
			require.True(t, ok, "expected a timestamp result")
			assert.Equal(t, "2026-08-30T10:34:56.789Z", res.DisplayValue, "must be UTC with a Z suffix")
		})
	}

	_, ok := findKind(Recognize("nowish"), domain.SmartTimestamp)
	assert.False(t, ok)
}

func TestRecognizeEmptyQueryMatchesNothing(t *testing.T) {
	assert.Empty(t, Recognize(""))
	assert.Empty(t, Recognize("   \t "))
}
