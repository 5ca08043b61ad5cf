package pomodoro

import (
	"errors"
	"fmt"
)

// SessionType distinguishes work intervals from breaks.
type SessionType string

const (
	TypeWork       SessionType = "work"
	TypeShortBreak SessionType = "shortBreak"
	TypeLongBreak  SessionType = "longBreak"
)

// Default interval lengths in seconds.
const (
	DefaultWorkSeconds       = 25 * 60
	DefaultShortBreakSeconds = 5 * 60
	DefaultLongBreakSeconds  = 15 * 60
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrInvalidRange = errors.New("session end must be after start")
)

// Session is one finished timer interval. Start and End are unix
// milliseconds, matching the persisted shape.
type Session struct {
	ID        string      `json:"id"`
	Start     int64       `json:"start"`
	End       int64       `json:"end"`
	Type      SessionType `json:"type"`
	Completed bool        `json:"completed"`
}

func (s Session) RecordID() string { return s.ID }

func (t SessionType) valid() bool {
	switch t {
	case TypeWork, TypeShortBreak, TypeLongBreak:
		return true
	}

	return false
}

// Stats summarizes completed focus time.
type Stats struct {
	TotalSessions  int    `json:"totalSessions"`
	FocusedSeconds int    `json:"focusedSeconds"`
	FocusedHours   string `json:"focusedHours"`
}

func computeStats(sessions []Session, workSeconds int) Stats {
	stats := Stats{TotalSessions: len(sessions)}

	for _, s := range sessions {
		if s.Type == TypeWork && s.Completed {
			stats.FocusedSeconds += workSeconds
		}
	}

	stats.FocusedHours = fmt.Sprintf("%.1f", float64(stats.FocusedSeconds)/3600)

	return stats
}
