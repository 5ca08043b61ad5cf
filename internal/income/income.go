package income

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrNotFound         = errors.New("income not found")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrEmptyDescription = errors.New("description must not be empty")
)

// Income is a single earning record.
type Income struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i Income) RecordID() string { return i.ID }
