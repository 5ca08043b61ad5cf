package pomodoro_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/pomodoro"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func newService(t *testing.T) *pomodoro.Service {
	t.Helper()

	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	svc, err := pomodoro.NewService(context.Background(), backend, pomodoro.DefaultWorkSeconds)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc
}

func TestService_AddValidatesRange(t *testing.T) {
	svc := newService(t)

	_, err := svc.Add(pomodoro.Session{Start: 2000, End: 1000, Type: pomodoro.TypeWork})
	assert.ErrorIs(t, err, pomodoro.ErrInvalidRange)

	_, err = svc.Add(pomodoro.Session{Start: 1000, End: 1000, Type: pomodoro.TypeWork})
	assert.ErrorIs(t, err, pomodoro.ErrInvalidRange)

	got, err := svc.Add(pomodoro.Session{Start: 1000, End: 2000, Type: pomodoro.TypeWork, Completed: true})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
}

func TestService_Stats(t *testing.T) {
	svc := newService(t)

	stats := svc.Stats()
	assert.Zero(t, stats.TotalSessions)
	assert.Equal(t, "0.0", stats.FocusedHours)

	add := func(typ pomodoro.SessionType, completed bool) {
		_, err := svc.Add(pomodoro.Session{Start: 1000, End: 2000, Type: typ, Completed: completed})
		require.NoError(t, err)
	}

	add(pomodoro.TypeWork, true)
	add(pomodoro.TypeWork, true)
	add(pomodoro.TypeShortBreak, true)
	add(pomodoro.TypeWork, false)

	stats = svc.Stats()
	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, 2*pomodoro.DefaultWorkSeconds, stats.FocusedSeconds)
	assert.Equal(t, "0.8", stats.FocusedHours)
}

func TestService_RemoveAndReset(t *testing.T) {
	svc := newService(t)

	s, err := svc.Add(pomodoro.Session{Start: 1000, End: 2000, Type: pomodoro.TypeWork})
	require.NoError(t, err)
	_, err = svc.Add(pomodoro.Session{Start: 3000, End: 4000, Type: pomodoro.TypeWork})
	require.NoError(t, err)

	svc.Remove(s.ID)
	svc.Remove(s.ID)
	assert.Len(t, svc.List(), 1)

	svc.Reset()
	assert.Empty(t, svc.List())
}
