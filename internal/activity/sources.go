package activity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/expense"
	"github.com/MrJamesThe3rd/dailyhub/internal/income"
	"github.com/MrJamesThe3rd/dailyhub/internal/note"
	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
	"github.com/MrJamesThe3rd/dailyhub/internal/todo"
)

type sourceFunc struct {
	name   string
	events func() []Event
}

func (s sourceFunc) Name() string    { return s.name }
func (s sourceFunc) Events() []Event { return s.events() }

// Expenses feeds expense records, stamped with their creation time.
func Expenses(svc *expense.Service) Source {
	return sourceFunc{name: "expenses", events: func() []Event {
		recs := svc.List()
		out := make([]Event, 0, len(recs))

		for _, e := range recs {
			out = append(out, Event{
				Domain:     "expenses",
				ID:         e.ID,
				Title:      e.Description,
				Detail:     fmt.Sprintf("%.2f · %s", e.Amount, e.Category),
				OccurredAt: e.CreatedAt,
			})
		}

		return out
	}}
}

// Incomes feeds income records.
func Incomes(svc *income.Service) Source {
	return sourceFunc{name: "incomes", events: func() []Event {
		recs := svc.List()
		out := make([]Event, 0, len(recs))

		for _, i := range recs {
			out = append(out, Event{
				Domain:     "incomes",
				ID:         i.ID,
				Title:      i.Description,
				Detail:     fmt.Sprintf("%.2f", i.Amount),
				OccurredAt: i.CreatedAt,
			})
		}

		return out
	}}
}

// Todos feeds todos on their completion time when present, otherwise
// their creation time.
func Todos(svc *todo.Service) Source {
	return sourceFunc{name: "todos", events: func() []Event {
		recs := svc.List()
		out := make([]Event, 0, len(recs))

		for _, t := range recs {
			occurred := t.CreatedAt
			detail := "created"

			if t.CompletedAt != nil {
				occurred = *t.CompletedAt
				detail = "completed"
			}

			out = append(out, Event{
				Domain:     "todos",
				ID:         t.ID,
				Title:      t.Title,
				Detail:     detail,
				OccurredAt: occurred,
			})
		}

		return out
	}}
}

// Notes feeds quick notes; their ids embed the creation timestamp.
func Notes(svc *note.Service) Source {
	return sourceFunc{name: "notes", events: func() []Event {
		recs := svc.List()
		out := make([]Event, 0, len(recs))

		for _, n := range recs {
			out = append(out, Event{
				Domain:     "notes",
				ID:         n.ID,
				Title:      n.Text,
				OccurredAt: noteTime(n.ID),
			})
		}

		return out
	}}
}

// Pomodoro feeds completed sessions on their end time.
func Pomodoro(svc *pomodoro.Service) Source {
	return sourceFunc{name: "pomodoro", events: func() []Event {
		recs := svc.List()
		out := make([]Event, 0, len(recs))

		for _, s := range recs {
			out = append(out, Event{
				Domain:     "pomodoro",
				ID:         s.ID,
				Title:      string(s.Type),
				OccurredAt: time.UnixMilli(s.End),
			})
		}

		return out
	}}
}

func noteTime(id string) time.Time {
	prefix, _, _ := strings.Cut(id, "-")

	ms, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}
