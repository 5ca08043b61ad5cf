package note

import (
	"context"
	"strings"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "quick_notes"

type Service struct {
	store *feature.Store[Note]
}

func NewService(ctx context.Context, backend feature.Backend) (*Service, error) {
	store, err := feature.New[Note](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	return &Service{store: store}, nil
}

// Add trims text and prepends a new note. Whitespace-only text is
// rejected.
func (s *Service) Add(text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrEmptyText
	}

	return s.store.Add(Note{ID: feature.NewID(), Text: text}), nil
}

func (s *Service) Edit(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}

	ok := s.store.Update(id, func(n Note) Note {
		n.Text = text

		return n
	})
	if !ok {
		return ErrNotFound
	}

	return nil
}

func (s *Service) Delete(id string) {
	s.store.Remove(id)
}

func (s *Service) Get(id string) (Note, error) {
	n, ok := s.store.Get(id)
	if !ok {
		return Note{}, ErrNotFound
	}

	return n, nil
}

func (s *Service) List() []Note {
	return s.store.All()
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
