// Package feature implements the store pattern shared by every domain:
// an in-memory authoritative record list, loaded from and written back
// to a single durable slot as a versioned JSON envelope.
package feature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

// Record is any domain value held by a Store.
type Record interface {
	RecordID() string
}

//go:generate mockgen -source=store.go -destination=backend_mock.go -package=feature

// Backend is the durable slot a Store persists into.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Store owns the canonical in-memory list for one domain. Mutations
// apply synchronously to the list and schedule a full-list rewrite
// through a single-writer queue, so two rapid mutations can never race
// each other to the slot: snapshots are written in the order they were
// taken, with intermediate snapshots coalesced away.
type Store[T Record] struct {
	key     string
	backend Backend

	mu        sync.Mutex
	recs      []T
	pending   *snapshot
	gen       uint64
	written   uint64
	writeDone chan struct{}
	closed    bool

	kick chan struct{}
	done chan struct{}
}

type snapshot struct {
	data []byte
	gen  uint64
}

// New loads the slot at key and starts the store's writer. An absent
// slot seeds an empty list; malformed stored JSON is a fatal error.
func New[T Record](ctx context.Context, backend Backend, key string) (*Store[T], error) {
	recs, err := load[T](ctx, backend, key)
	if err != nil {
		return nil, err
	}

	s := &Store[T]{
		key:       key,
		backend:   backend,
		recs:      recs,
		writeDone: make(chan struct{}),
		kick:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}

	go s.writeLoop()

	return s, nil
}

// Add prepends rec and returns it.
func (s *Store[T]) Add(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append([]T{rec}, s.recs...)
	s.scheduleSave()

	return rec
}

// AddBatch prepends every record in order with a single persistence
// write at the end.
func (s *Store[T]) AddBatch(recs []T) []T {
	if len(recs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]T, 0, len(recs)+len(s.recs))
	merged = append(merged, recs...)
	merged = append(merged, s.recs...)
	s.recs = merged
	s.scheduleSave()

	return recs
}

// Update applies fn to the record with the given id. Returns false,
// without persisting anything, when the id is absent.
func (s *Store[T]) Update(id string, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.recs {
		if r.RecordID() == id {
			s.recs[i] = fn(r)
			s.scheduleSave()

			return true
		}
	}

	return false
}

// Remove filters the record out. Removing an absent id is a no-op.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.recs {
		if r.RecordID() == id {
			s.recs = append(s.recs[:i:i], s.recs[i+1:]...)
			s.scheduleSave()

			return true
		}
	}

	return false
}

// RemoveWhere drops every record matching pred and returns how many
// were dropped. A zero-match call does not persist.
func (s *Store[T]) RemoveWhere(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.recs[:0:0]

	for _, r := range s.recs {
		if !pred(r) {
			kept = append(kept, r)
		}
	}

	removed := len(s.recs) - len(kept)
	if removed > 0 {
		s.recs = kept
		s.scheduleSave()
	}

	return removed
}

// Clear empties the list.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = nil
	s.scheduleSave()
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.recs {
		if r.RecordID() == id {
			return r, true
		}
	}

	var zero T

	return zero, false
}

// All returns a copy of the current list, newest first.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.recs))
	copy(out, s.recs)

	return out
}

// Len returns the current record count.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.recs)
}

// Flush blocks until every snapshot taken before the call has been
// written to the backend.
func (s *Store[T]) Flush(ctx context.Context) error {
	for {
		s.mu.Lock()
		drained := s.written >= s.gen
		ch := s.writeDone
		s.mu.Unlock()

		if drained {
			return nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close flushes outstanding writes and stops the writer. The store
// must not be mutated afterwards.
func (s *Store[T]) Close() error {
	err := s.Flush(context.Background())

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.kick)
	}
	s.mu.Unlock()

	<-s.done

	return err
}

// scheduleSave snapshots the current list for the writer. Callers must
// hold s.mu.
func (s *Store[T]) scheduleSave() {
	if s.closed {
		slog.Warn("mutation after store close dropped", "key", s.key)

		return
	}

	data, err := json.Marshal(envelope{Schema: currentSchema, Records: mustRaw(s.recs)})
	if err != nil {
		// Records are plain value structs; this cannot happen with
		// well-formed types. Log instead of crashing the caller.
		slog.Error("encoding records for save", "key", s.key, "error", err)

		return
	}

	s.gen++
	s.pending = &snapshot{data: data, gen: s.gen}

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *Store[T]) writeLoop() {
	defer close(s.done)

	for range s.kick {
		for {
			s.mu.Lock()
			snap := s.pending
			s.pending = nil
			s.mu.Unlock()

			if snap == nil {
				break
			}

			err := s.backend.Save(context.Background(), s.key, snap.data)
			if err != nil {
				// Write failures are dropped after logging; the
				// in-memory list stays authoritative.
				slog.Error("persisting records", "key", s.key, "error", err)
			}

			s.mu.Lock()
			s.written = snap.gen
			close(s.writeDone)
			s.writeDone = make(chan struct{})
			s.mu.Unlock()
		}
	}
}

func mustRaw[T any](recs []T) json.RawMessage {
	if recs == nil {
		recs = []T{}
	}

	data, err := json.Marshal(recs)
	if err != nil {
		return json.RawMessage("[]")
	}

	return json.RawMessage(data)
}

func load[T Record](ctx context.Context, backend Backend, key string) ([]T, error) {
	raw, err := backend.Load(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNoKey) {
			return nil, nil
		}

		return nil, fmt.Errorf("loading %q: %w", key, err)
	}

	recs, err := decode[T](raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", key, err)
	}

	return recs, nil
}
