// Package importer parses expense CSV exports. Column layout is not
// fixed: the header row is matched against known synonyms for the
// date, description and amount columns, so exports from different
// banks and card apps import without per-bank profiles.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	enc "github.com/MrJamesThe3rd/dailyhub/internal/encoding"
	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
)

var (
	ErrEmptyFile      = errors.New("csv must have a header row and at least one data row")
	ErrMissingColumns = errors.New("csv must contain date, description and amount columns")
	ErrNoValidRows    = errors.New("no valid expenses found in csv")
)

// Synonyms accepted for each required column, matched as substrings of
// the lowercased header cell.
var (
	dateSynonyms        = []string{"date"}
	descriptionSynonyms = []string{"description", "merchant", "payee", "narration"}
	amountSynonyms      = []string{"amount", "debit", "withdrawal"}
)

// RowError describes one skipped data row. Line is 1-based in the
// original file.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result carries the parsed params plus a report of skipped rows.
type Result struct {
	Params  []expense.CreateParams
	Skipped []RowError
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole file. Malformed rows are skipped individually
// and reported; the parse fails only when no valid row remains.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows = dropBlank(rows)
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	dateIdx, descIdx, amountIdx, ok := findColumns(rows[0])
	if !ok {
		return nil, ErrMissingColumns
	}

	result := &Result{}

	for i, row := range rows[1:] {
		line := i + 2

		params, reason := parseRow(row, dateIdx, descIdx, amountIdx)
		if reason != "" {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: reason})

			continue
		}

		result.Params = append(result.Params, params)
	}

	if len(result.Params) == 0 {
		return nil, ErrNoValidRows
	}

	return result, nil
}

func dropBlank(rows [][]string) [][]string {
	kept := rows[:0:0]

	for _, row := range rows {
		blank := true

		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false

				break
			}
		}

		if !blank {
			kept = append(kept, row)
		}
	}

	return kept
}

func findColumns(header []string) (dateIdx, descIdx, amountIdx int, ok bool) {
	find := func(synonyms []string) int {
		for i, cell := range header {
			name := strings.ToLower(strings.TrimSpace(cell))

			for _, syn := range synonyms {
				if strings.Contains(name, syn) {
					return i
				}
			}
		}

		return -1
	}

	dateIdx = find(dateSynonyms)
	descIdx = find(descriptionSynonyms)
	amountIdx = find(amountSynonyms)

	return dateIdx, descIdx, amountIdx, dateIdx >= 0 && descIdx >= 0 && amountIdx >= 0
}

func parseRow(row []string, dateIdx, descIdx, amountIdx int) (expense.CreateParams, string) {
	if len(row) <= max(dateIdx, descIdx, amountIdx) {
		return expense.CreateParams{}, "too few columns"
	}

	date := strings.TrimSpace(row[dateIdx])
	desc := strings.TrimSpace(row[descIdx])

	if date == "" {
		return expense.CreateParams{}, "missing date"
	}

	if desc == "" {
		return expense.CreateParams{}, "missing description"
	}

	amount, err := parseAmount(row[amountIdx])
	if err != nil {
		return expense.CreateParams{}, err.Error()
	}

	return expense.CreateParams{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Method:      expense.MethodCSV,
	}, ""
}

// parseAmount strips currency symbols, thousands separators and
// whitespace, then takes the absolute value: debit columns commonly
// report spending as negative.
func parseAmount(cell string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', ',', ' ', '\t':
			return -1
		}

		return r
	}, cell)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable amount %q", strings.TrimSpace(cell))
	}

	if amount == 0 {
		return 0, errors.New("amount is zero")
	}

	return math.Abs(amount), nil
}
