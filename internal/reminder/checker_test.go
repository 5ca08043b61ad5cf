package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func TestChecker_SuppressesRepeatAlerts(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	svc, err := NewService(context.Background(), backend)
	require.NoError(t, err)
	defer svc.Close()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err = svc.Add(CreateParams{Title: "overdue", DueDateTime: now.Add(-time.Minute)})
	require.NoError(t, err)

	var alerts int

	c := NewChecker(svc, func(due []Reminder) {
		alerts++
		assert.Len(t, due, 1)
	})

	c.check(now)
	c.check(now.Add(time.Minute)) // inside the suppression window
	assert.Equal(t, 1, alerts)

	c.check(now.Add(6 * time.Minute))
	assert.Equal(t, 2, alerts)
}

func TestChecker_NoAlertWhenNothingDue(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	svc, err := NewService(context.Background(), backend)
	require.NoError(t, err)
	defer svc.Close()

	now := time.Now()

	_, err = svc.Add(CreateParams{Title: "later", DueDateTime: now.Add(time.Hour)})
	require.NoError(t, err)

	c := NewChecker(svc, func([]Reminder) { t.Fatal("unexpected alert") })
	c.check(now)
}
