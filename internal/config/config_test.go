package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dailyhub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "DailyHub", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 1500, cfg.Pomodoro.WorkSeconds)
	assert.Equal(t, 300, cfg.Pomodoro.ShortBreakSeconds)
	assert.Equal(t, 900, cfg.Pomodoro.LongBreakSeconds)
	assert.Equal(t, 5*time.Second, cfg.Quotes.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "TestHub")
	t.Setenv("PORT", "9090")
	t.Setenv("POMODORO_WORK_SECONDS", "600")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "TestHub", cfg.App.Name)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 600, cfg.Pomodoro.WorkSeconds)
}

func TestStoragePath(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.Storage.Path = filepath.Join(t.TempDir(), "hub.db")
	got, err := cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, cfg.Storage.Path, got)

	cfg.Storage.Path = ""
	got, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Contains(t, got, filepath.Join(".dailyhub", "dailyhub.db"))
}
