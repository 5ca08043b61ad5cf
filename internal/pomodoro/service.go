package pomodoro

import (
	"context"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
)

const storageKey = "pomodoro_sessions"

// Service owns the completed-session history. Only finished intervals
// are persisted; a live countdown never reaches storage.
type Service struct {
	store       *feature.Store[Session]
	workSeconds int
}

func NewService(ctx context.Context, backend feature.Backend, workSeconds int) (*Service, error) {
	store, err := feature.New[Session](ctx, backend, storageKey)
	if err != nil {
		return nil, err
	}

	if workSeconds <= 0 {
		workSeconds = DefaultWorkSeconds
	}

	return &Service{store: store, workSeconds: workSeconds}, nil
}

// Add records a finished session.
func (s *Service) Add(session Session) (Session, error) {
	if session.End <= session.Start {
		return Session{}, ErrInvalidRange
	}

	if !session.Type.valid() {
		session.Type = TypeWork
	}

	if session.ID == "" {
		session.ID = feature.NewID()
	}

	return s.store.Add(session), nil
}

// Remove deletes one session; absent ids are a no-op.
func (s *Service) Remove(id string) {
	s.store.Remove(id)
}

// Reset clears the whole history.
func (s *Service) Reset() {
	s.store.Clear()
}

func (s *Service) List() []Session {
	return s.store.All()
}

// Stats summarizes the history. Focused time counts completed work
// sessions at the configured work interval length.
func (s *Service) Stats() Stats {
	return computeStats(s.store.All(), s.workSeconds)
}

func (s *Service) Flush(ctx context.Context) error {
	return s.store.Flush(ctx)
}

func (s *Service) Close() error {
	return s.store.Close()
}
