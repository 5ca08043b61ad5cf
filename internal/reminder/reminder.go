package reminder

import (
	"errors"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DueSoonWindow is how far ahead a reminder counts as "due soon".
const DueSoonWindow = time.Hour

var (
	ErrNotFound   = errors.New("reminder not found")
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrNoDueTime  = errors.New("due time must be set")
)

type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDateTime time.Time `json:"dueDateTime"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r Reminder) RecordID() string { return r.ID }

// Due reports whether the reminder's due time has passed and it is
// still open.
func (r Reminder) Due(now time.Time) bool {
	return !r.Completed && !r.DueDateTime.After(now)
}

// DueSoon reports whether the reminder falls due within the next hour
// but is not yet due.
func (r Reminder) DueSoon(now time.Time) bool {
	if r.Completed || !r.DueDateTime.After(now) {
		return false
	}

	return !r.DueDateTime.After(now.Add(DueSoonWindow))
}
