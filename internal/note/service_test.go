package note_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/note"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func newService(t *testing.T) *note.Service {
	t.Helper()

	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	svc, err := note.NewService(context.Background(), backend)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	return svc
}

func TestService_AddTrims(t *testing.T) {
	svc := newService(t)

	_, err := svc.Add("   ")
	assert.ErrorIs(t, err, note.ErrEmptyText)

	got, err := svc.Add("  remember the milk  ")
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", got.Text)
	assert.NotEmpty(t, got.ID)
}

func TestService_NewestFirst(t *testing.T) {
	svc := newService(t)

	_, err := svc.Add("first")
	require.NoError(t, err)
	_, err = svc.Add("second")
	require.NoError(t, err)

	notes := svc.List()
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Text)
}

func TestService_EditAndDelete(t *testing.T) {
	svc := newService(t)

	n, err := svc.Add("typo")
	require.NoError(t, err)

	require.NoError(t, svc.Edit(n.ID, "fixed"))
	assert.ErrorIs(t, svc.Edit(n.ID, "  "), note.ErrEmptyText)
	assert.ErrorIs(t, svc.Edit("missing", "x"), note.ErrNotFound)

	got, err := svc.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.Text)

	svc.Delete(n.ID)
	svc.Delete(n.ID)
	assert.Empty(t, svc.List())
}
