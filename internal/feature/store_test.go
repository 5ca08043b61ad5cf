package feature_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dailyhub/internal/feature"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (i item) RecordID() string { return i.ID }

func newMemoryStore(t *testing.T) (*feature.Store[item], *storage.Store) {
	t.Helper()

	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	st, err := feature.New[item](context.Background(), backend, "items")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st, backend
}

func TestStore_AddPrepends(t *testing.T) {
	st, _ := newMemoryStore(t)

	st.Add(item{ID: "a", Name: "first"})
	st.Add(item{ID: "b", Name: "second"})

	recs := st.All()
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "a", recs[1].ID)
}

func TestStore_UpdateMissingIsNoOp(t *testing.T) {
	st, _ := newMemoryStore(t)

	st.Add(item{ID: "a"})

	ok := st.Update("nope", func(i item) item {
		i.Name = "changed"
		return i
	})
	assert.False(t, ok)

	got, found := st.Get("a")
	require.True(t, found)
	assert.Empty(t, got.Name)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	st, _ := newMemoryStore(t)

	st.Add(item{ID: "a"})

	assert.True(t, st.Remove("a"))
	assert.False(t, st.Remove("a"))
	assert.Zero(t, st.Len())
}

func TestStore_RemoveWhere(t *testing.T) {
	st, _ := newMemoryStore(t)

	st.Add(item{ID: "a", Name: "keep"})
	st.Add(item{ID: "b", Name: "drop"})
	st.Add(item{ID: "c", Name: "drop"})

	n := st.RemoveWhere(func(i item) bool { return i.Name == "drop" })
	assert.Equal(t, 2, n)

	recs := st.All()
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].ID)
}

func TestStore_RoundTripThroughBackend(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	st, err := feature.New[item](ctx, backend, "items")
	require.NoError(t, err)

	st.Add(item{ID: "a", Name: "alpha"})
	st.Add(item{ID: "b", Name: "beta"})
	require.NoError(t, st.Close())

	reloaded, err := feature.New[item](ctx, backend, "items")
	require.NoError(t, err)
	defer reloaded.Close()

	recs := reloaded.All()
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, "alpha", recs[1].Name)
}

func TestStore_AddBatchSingleWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := feature.NewMockBackend(ctrl)
	backend.EXPECT().
		Load(gomock.Any(), "items").
		Return(nil, storage.ErrNoKey)
	backend.EXPECT().
		Save(gomock.Any(), "items", gomock.Any()).
		Times(1)

	ctx := context.Background()

	st, err := feature.New[item](ctx, backend, "items")
	require.NoError(t, err)

	batch := st.AddBatch([]item{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	assert.Len(t, batch, 3)
	require.NoError(t, st.Flush(ctx))

	recs := st.All()
	require.Len(t, recs, 3)
	assert.Equal(t, "a", recs[0].ID)

	require.NoError(t, st.Close())
}

func TestStore_MigratesLegacyBareArray(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	// Blobs written before versioning were bare arrays.
	require.NoError(t, backend.Save(ctx, "items", []byte(`[{"id":"old","name":"legacy"}]`)))

	st, err := feature.New[item](ctx, backend, "items")
	require.NoError(t, err)

	recs := st.All()
	require.Len(t, recs, 1)
	assert.Equal(t, "old", recs[0].ID)

	// First write rewrites the slot inside a versioned envelope.
	st.Add(item{ID: "new"})
	require.NoError(t, st.Close())

	raw, err := backend.Load(ctx, "items")
	require.NoError(t, err)

	var env struct {
		Schema  int             `json:"schema"`
		Records json.RawMessage `json:"records"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, 1, env.Schema)
}

func TestStore_MalformedBlobIsFatal(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, backend.Save(ctx, "items", []byte(`{"schema":`)))

	_, err = feature.New[item](ctx, backend, "items")
	assert.Error(t, err)
}

func TestStore_UnsupportedSchemaIsFatal(t *testing.T) {
	backend, err := storage.OpenMemory()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, backend.Save(ctx, "items", []byte(`{"schema":99,"records":[]}`)))

	_, err = feature.New[item](ctx, backend, "items")
	assert.Error(t, err)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		id := feature.NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
