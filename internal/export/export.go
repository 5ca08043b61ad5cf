// Package export renders the expense list as CSV or JSON for download
// and backup.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
)

// ExpensesCSV writes a header row followed by one row per expense.
func ExpensesCSV(w io.Writer, expenses []expense.Expense) error {
	cw := csv.NewWriter(w)

	header := []string{"ID", "Date", "Description", "Amount", "Category", "Method", "Notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range expenses {
		row := []string{
			e.ID,
			e.Date,
			e.Description,
			fmt.Sprintf("%.2f", e.Amount),
			e.Category,
			string(e.Method),
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

type jsonExport struct {
	ExportedAt string            `json:"exported_at"`
	Count      int               `json:"count"`
	Expenses   []expense.Expense `json:"expenses"`
}

// ExpensesJSON writes the list wrapped with an export timestamp and
// count.
func ExpensesJSON(w io.Writer, expenses []expense.Expense) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(expenses),
		Expenses:   expenses,
	}

	if out.Expenses == nil {
		out.Expenses = []expense.Expense{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	return nil
}
