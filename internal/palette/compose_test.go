package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniq/internal/domain"
)

func testTools() []domain.Tool {
	return []domain.Tool{
		{ID: "file-merger", Label: "File Merger", Description: "Merge spreadsheets and CSV files", Icon: "📂"},
		{ID: "date-normalizer", Label: "Date Normalizer", Description: "Normalize mixed date formats", Icon: "📅"},
		{ID: "json-converter", Label: "JSON Converter", Description: "Convert tabular data to JSON", Icon: "🧾"},
	}
}

func TestComposeEmptyQueryReturnsFullRegistry(t *testing.T) {
	rows := Compose("", testTools())

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.False(t, row.IsSmart())
		assert.Equal(t, testTools()[i].ID, row.Tool.ID, "registry order must be preserved")
	}
}

func TestComposeSubstringMatchesLabelOrDescription(t *testing.T) {
	rows := Compose("merge", testTools())
	require.Len(t, rows, 1)
	assert.Equal(t, "file-merger", rows[0].Tool.ID)

	// matching is case-insensitive
	rows = Compose("NORMALIZE", testTools())
	require.Len(t, rows, 1)
	assert.Equal(t, "date-normalizer", rows[0].Tool.ID)

	rows = Compose("tabular", testTools())
	require.Len(t, rows, 1)
	assert.Equal(t, "json-converter", rows[0].Tool.ID)
}

func TestComposeSmartResultsPrecedeToolMatches(t *testing.T) {
	tools := []domain.Tool{
		{ID: "adder", Label: "2+2 helper", Description: "contains the query literally"},
	}
	rows := Compose("2+2", tools)

	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsSmart(), "smart results always come first")
	assert.Equal(t, domain.SmartCalculation, rows[0].Smart.Kind)
	assert.False(t, rows[1].IsSmart())
	assert.Equal(t, "adder", rows[1].Tool.ID)
}

func TestComposeIsDeterministic(t *testing.T) {
	first := Compose("3*(4+5)", testTools())
	second := Compose("3*(4+5)", testTools())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID(), second[i].ID())
		if first[i].IsSmart() {
			assert.Equal(t, first[i].Smart.DisplayValue, second[i].Smart.DisplayValue)
		}
	}
}

func TestComposeNoMatches(t *testing.T) {
	rows := Compose("zzzzz", testTools())
	assert.Empty(t, rows)
}

func TestRowID(t *testing.T) {
	rows := Compose("#fff", testTools())
	require.NotEmpty(t, rows)
	assert.Equal(t, "smart:color", rows[0].ID())

	rows = Compose("", testTools())
	require.NotEmpty(t, rows)
	assert.Equal(t, "tool:file-merger", rows[0].ID())
}
