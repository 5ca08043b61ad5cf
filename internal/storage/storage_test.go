package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func TestStore_LoadMissingKey(t *testing.T) {
	s, err := storage.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(context.Background(), "todos")
	assert.ErrorIs(t, err, storage.ErrNoKey)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s, err := storage.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "expenses", []byte(`[{"id":"1"}]`)))

	got, err := s.Load(ctx, "expenses")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestStore_SaveOverwrites(t *testing.T) {
	s, err := storage.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "theme", []byte(`"light"`)))
	require.NoError(t, s.Save(ctx, "theme", []byte(`"dark"`)))

	got, err := s.Load(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(got))
}

func TestStore_Delete(t *testing.T) {
	s, err := storage.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "notes", []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, "notes"))

	_, err = s.Load(ctx, "notes")
	assert.ErrorIs(t, err, storage.ErrNoKey)

	// Deleting again is a no-op.
	assert.NoError(t, s.Delete(ctx, "notes"))
}

func TestStore_Reset(t *testing.T) {
	s, err := storage.OpenMemory()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "expenses", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "incomes", []byte(`[]`)))
	require.NoError(t, s.Reset(ctx))

	_, err = s.Load(ctx, "expenses")
	assert.ErrorIs(t, err, storage.ErrNoKey)
	_, err = s.Load(ctx, "incomes")
	assert.ErrorIs(t, err, storage.ErrNoKey)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.db")

	s, err := storage.Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "budgets", []byte(`[{"id":"b1"}]`)))
	require.NoError(t, s.Close())

	s, err = storage.Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "budgets")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"b1"}]`, string(got))
}
