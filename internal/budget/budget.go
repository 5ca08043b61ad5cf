package budget

import (
	"errors"
	"time"
)

// Period scopes how far back spending counts against a budget.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// DefaultColor is assigned when the caller supplies none.
const DefaultColor = "#6366F1"

var (
	ErrNotFound      = errors.New("budget not found")
	ErrInvalidLimit  = errors.New("limit must be greater than zero")
	ErrInvalidPeriod = errors.New("period must be daily, weekly or monthly")
	ErrEmptyCategory = errors.New("category must not be empty")
)

// Budget caps spending for one category over a rolling period.
type Budget struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Limit     float64   `json:"limit"`
	Period    Period    `json:"period"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b Budget) RecordID() string { return b.ID }

func (p Period) valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}

	return false
}

// windowStart returns the earliest instant an expense may fall on and
// still count against a budget of this period.
func (p Period) windowStart(now time.Time) time.Time {
	switch p {
	case PeriodDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}
