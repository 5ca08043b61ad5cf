package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/profile"
	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

func newService(t *testing.T) *profile.Service {
	t.Helper()

	store, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return profile.NewService(store)
}

func TestGetDefaults(t *testing.T) {
	svc := newService(t)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Empty(t, p.DisplayName)
	assert.Equal(t, profile.ThemeLight, p.Theme)
}

func TestSetDisplayName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetDisplayName(ctx, "James"))

	p, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, "James", p.DisplayName)
	assert.Equal(t, profile.ThemeLight, p.Theme)
}

func TestSetTheme(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetTheme(ctx, profile.ThemeDark))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ThemeDark, p.Theme)

	assert.ErrorIs(t, svc.SetTheme(ctx, profile.Theme("sepia")), profile.ErrInvalidTheme)
}

func TestReset(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetDisplayName(ctx, "James"))
	require.NoError(t, svc.SetTheme(ctx, profile.ThemeDark))
	require.NoError(t, svc.Reset(ctx))

	p, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Empty(t, p.DisplayName)
	assert.Equal(t, profile.ThemeLight, p.Theme)
}
