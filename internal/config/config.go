package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"DailyHub"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Path to the sqlite file; empty means ~/.dailyhub/dailyhub.db
		Path string `envconfig:"STORAGE_PATH"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Pomodoro struct {
		WorkSeconds       int `envconfig:"POMODORO_WORK_SECONDS" default:"1500"`
		ShortBreakSeconds int `envconfig:"POMODORO_SHORT_BREAK_SECONDS" default:"300"`
		LongBreakSeconds  int `envconfig:"POMODORO_LONG_BREAK_SECONDS" default:"900"`
	}

	Quotes struct {
		PrimaryURL  string        `envconfig:"QUOTES_PRIMARY_URL"`
		FallbackURL string        `envconfig:"QUOTES_FALLBACK_URL"`
		APIKey      string        `envconfig:"QUOTES_API_KEY"`
		Timeout     time.Duration `envconfig:"QUOTES_TIMEOUT" default:"5s"`
	}
}

// StoragePath resolves the configured sqlite path, defaulting to a
// dotfile directory under the user's home.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, ".dailyhub", "dailyhub.db"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
