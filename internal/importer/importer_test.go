package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/importer"
)

func TestParser_SkipsMalformedRows(t *testing.T) {
	csv := "Date,Description,Amount\n2025-01-15,Coffee,5.50\n2025-01-16,BadRow,abc"

	p := importer.NewParser()

	result, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, result.Params, 1)
	assert.Equal(t, "2025-01-15", result.Params[0].Date)
	assert.Equal(t, "Coffee", result.Params[0].Description)
	assert.InDelta(t, 5.50, result.Params[0].Amount, 1e-9)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 3, result.Skipped[0].Line)
}

func TestParser_HeaderSynonyms(t *testing.T) {
	type testCase struct {
		name   string
		header string
	}

	tests := []testCase{
		{name: "Canonical", header: "Date,Description,Amount"},
		{name: "BankExport", header: "Transaction Date,Merchant,Debit"},
		{name: "Statement", header: "date,narration,withdrawal"},
		{name: "CardApp", header: "DATE,Payee,Transaction Amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := tt.header + "\n2025-01-15,Coffee,5.50\n"

			result, err := importer.NewParser().Parse(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, result.Params, 1)
			assert.Equal(t, "Coffee", result.Params[0].Description)
		})
	}
}

func TestParser_MissingColumns(t *testing.T) {
	csv := "When,What\n2025-01-15,Coffee\n"

	_, err := importer.NewParser().Parse(strings.NewReader(csv))
	assert.ErrorIs(t, err, importer.ErrMissingColumns)
}

func TestParser_EmptyFile(t *testing.T) {
	_, err := importer.NewParser().Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, importer.ErrEmptyFile)

	_, err = importer.NewParser().Parse(strings.NewReader("Date,Description,Amount\n"))
	assert.ErrorIs(t, err, importer.ErrEmptyFile)
}

func TestParser_NoValidRows(t *testing.T) {
	csv := "Date,Description,Amount\n2025-01-15,Coffee,abc\n,Lunch,5\n"

	_, err := importer.NewParser().Parse(strings.NewReader(csv))
	assert.ErrorIs(t, err, importer.ErrNoValidRows)
}

func TestParser_CleansAmounts(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"2025-01-15,Rent,\"$1,250.00\"\n" +
		"2025-01-16,Refund,-42.50\n" +
		"2025-01-17,Zero,0\n"

	result, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, result.Params, 2)

	assert.InDelta(t, 1250.0, result.Params[0].Amount, 1e-9)

	// Negative debits import as positive spending.
	assert.InDelta(t, 42.50, result.Params[1].Amount, 1e-9)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 4, result.Skipped[0].Line)
}

func TestParser_SkipsBlankLines(t *testing.T) {
	csv := "Date,Description,Amount\n\n2025-01-15,Coffee,5.50\n\n"

	result, err := importer.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, result.Params, 1)
	assert.Empty(t, result.Skipped)
}
