package reminder

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "reminders"

type Service struct {
	store *feature.Store[Reminder]
	now   func() time.Time
}

func NewService(ctx context.Context, backend feature.Backend) (*Service, error) {
	store, err := feature.New[Reminder](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store, now: time.Now}, nil
}

type CreateParams struct {
	Title       string
	Description string
	DueDateTime time.Time
	Priority    Priority
}

func (s *Service) Add(params CreateParams) (Reminder, error) {
	if params.Title == "" {
		return Reminder{}, ErrEmptyTitle
	}

	if params.DueDateTime.IsZero() {
		return Reminder{}, ErrNoDueTime
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	return s.store.Add(Reminder{
		ID:          feature.NewID(),
		Title:       params.Title,
		Description: params.Description,
		DueDateTime: params.DueDateTime,
		Priority:    priority,
		CreatedAt:   s.now(),
	}), nil
}

type Patch struct {
	Title       *string
	Description *string
	DueDateTime *time.Time
	Priority    *Priority
}

func (s *Service) Update(id string, patch Patch) error {
	if patch.Title != nil && *patch.Title == "" {
		return ErrEmptyTitle
	}

	if patch.DueDateTime != nil && patch.DueDateTime.IsZero() {
		return ErrNoDueTime
	}

	ok := s.store.Update(id, func(r Reminder) Reminder {
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.DueDateTime != nil {
			r.DueDateTime = *patch.DueDateTime
		}
		if patch.Priority != nil {
			r.Priority = *patch.Priority
		}

		return r
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Toggle(id string) error {
	ok := s.store.Update(id, func(r Reminder) Reminder {
		r.Completed = !r.Completed

		return r
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Reminder, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return Reminder{}, ErrNotFound
	}

	return r, nil
}

func (s *Service) List() []Reminder {
	return s.store.All()
}

// Partition splits reminders into active and completed.
func (s *Service) Partition() (active, completed []Reminder) {
	for _, r := range s.store.All() {
		if r.Completed {
			completed = append(completed, r)
		} else {
			active = append(active, r)
		}
	}

	return active, completed
}

// Due returns open reminders whose due time has passed.
func (s *Service) Due(now time.Time) []Reminder {
	var out []Reminder

	for _, r := range s.store.All() {
		if r.Due(now) {
			out = append(out, r)
		}
	}

	return out
}

// DueSoon returns open reminders falling due within the next hour.
func (s *Service) DueSoon(now time.Time) []Reminder {
	var out []Reminder

	for _, r := range s.store.All() {
		if r.DueSoon(now) {
			out = append(out, r)
		}
	}

	return out
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
