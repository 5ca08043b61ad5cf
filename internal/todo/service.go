package todo

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "todos"

type Service struct {
	store *feature.Store[Todo]
	now   func() time.Time
}

func NewService(ctx context.Context, backend feature.Backend) (*Service, error) {
	store, err := feature.New[Todo](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store, now: time.Now}, nil
}

type CreateParams struct {
	Title       string
	Description string
	Priority    Priority
	Category    string
	DueDate     string
}

func (s *Service) Add(params CreateParams) (Todo, error) {
	if params.Title == "" {
		return Todo{}, ErrEmptyTitle
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.valid() {
		return Todo{}, ErrInvalidPriority
	}

	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	return s.store.Add(Todo{
		ID:          feature.NewID(),
		Title:       params.Title,
		Description: params.Description,
		Priority:    priority,
		Category:    category,
		DueDate:     params.DueDate,
		CreatedAt:   s.now(),
	}), nil
}

type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Category    *string
	DueDate     *string
}

func (s *Service) Update(id string, patch Patch) error {
	if patch.Title != nil && *patch.Title == "" {
		return ErrEmptyTitle
	}

	if patch.Priority != nil && !patch.Priority.valid() {
		return ErrInvalidPriority
	}

	ok := s.store.Update(id, func(t Todo) Todo {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}

		return t
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

// Toggle flips completion. Completing stamps CompletedAt; reopening
// clears it.
func (s *Service) Toggle(id string) error {
	ok := s.store.Update(id, func(t Todo) Todo {
		t.Completed = !t.Completed

		if t.Completed {
			now := s.now()
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}

		return t
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Todo, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return Todo{}, ErrNotFound
	}

	return t, nil
}

func (s *Service) List() []Todo {
	return s.store.All()
}

// ClearCompleted drops every completed todo in one persistence write
// and returns how many were dropped.
func (s *Service) ClearCompleted() int {
	return s.store.RemoveWhere(func(t Todo) bool { return t.Completed })
}

// Counts returns total, completed and pending todo counts.
func (s *Service) Counts() (total, completed, pending int) {
	for _, t := range s.store.All() {
		total++

		if t.Completed {
			completed++
		} else {
			pending++
		}
	}

	return total, completed, pending
}

// Partition splits todos into active and completed, preserving list
// order (newest first).
func (s *Service) Partition() (active, completed []Todo) {
	for _, t := range s.store.All() {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}

	return active, completed
}

// PendingByCategory counts open todos per category.
func (s *Service) PendingByCategory() map[string]int {
	counts := make(map[string]int)

	for _, t := range s.store.All() {
		if !t.Completed {
			counts[t.Category]++
		}
	}

	return counts
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
