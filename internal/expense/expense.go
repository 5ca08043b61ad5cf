package expense

import (
	"errors"
	"time"
)

// Method records how an expense entered the system.
type Method string

const (
	MethodManual Method = "manual"
	MethodCSV    Method = "csv"
)

// DefaultCategory is assigned when the caller supplies none.
const DefaultCategory = "Uncategorized"

// DateLayout is the calendar-day format stored on every expense.
const DateLayout = "2006-01-02"

var (
	ErrNotFound = errors.New("expense not found")

	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description must not be empty")
)

// Expense is a single spending record.
type Expense struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Method      Method    `json:"method"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e Expense) RecordID() string { return e.ID }

// Day parses the expense's calendar day in the local timezone.
func (e Expense) Day() (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
