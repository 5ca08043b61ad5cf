// Package profile persists the two single-value preferences: the
// user's display name and the theme. Unlike the list-backed feature
// stores these occupy one slot each and are written synchronously.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/dailyhub/internal/storage"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

const (
	profileKey = "profile"
	themeKey   = "theme"
)

type Profile struct {
	DisplayName string `json:"displayName"`
	Theme       Theme  `json:"theme"`
}

// KV is the slot access the service needs; satisfied by
// *storage.Store.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	kv KV
}

func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

// Get assembles the profile, defaulting to an empty name and the
// light theme when nothing has been saved.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	p := Profile{Theme: ThemeLight}

	raw, err := s.kv.Load(ctx, profileKey)
	switch {
	case errors.Is(err, storage.ErrNoKey):
	case err != nil:
		return Profile{}, err
	default:
		var stored struct {
			DisplayName string `json:"displayName"`
		}
		if err := json.Unmarshal(raw, &stored); err != nil {
			return Profile{}, fmt.Errorf("parse profile: %w", err)
		}

		p.DisplayName = stored.DisplayName
	}

	raw, err = s.kv.Load(ctx, themeKey)
	switch {
	case errors.Is(err, storage.ErrNoKey):
	case err != nil:
		return Profile{}, err
	default:
		if t := Theme(raw); t == ThemeDark {
			p.Theme = ThemeDark
		}
	}

	return p, nil
}

func (s *Service) SetDisplayName(ctx context.Context, name string) error {
	data, err := json.Marshal(struct {
		DisplayName string `json:"displayName"`
	}{DisplayName: name})
	if err != nil {
		return err
	}

	return s.kv.Save(ctx, profileKey, data)
}

func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}

	return s.kv.Save(ctx, themeKey, []byte(theme))
}

// Reset clears both preference slots.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, profileKey); err != nil {
		return err
	}

	return s.kv.Delete(ctx, themeKey)
}
