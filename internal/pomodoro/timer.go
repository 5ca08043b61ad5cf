package pomodoro

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Durations configures interval lengths per session type.
type Durations struct {
	Work       int
	ShortBreak int
	LongBreak  int
}

func DefaultDurations() Durations {
	return Durations{
		Work:       DefaultWorkSeconds,
		ShortBreak: DefaultShortBreakSeconds,
		LongBreak:  DefaultLongBreakSeconds,
	}
}

func (d Durations) seconds(t SessionType) int {
	switch t {
	case TypeShortBreak:
		return d.ShortBreak
	case TypeLongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// TimerState is a read-only snapshot of the countdown.
type TimerState struct {
	Running     bool        `json:"running"`
	SecondsLeft int         `json:"secondsLeft"`
	Type        SessionType `json:"type"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	PausedAt    *time.Time  `json:"pausedAt,omitempty"`
}

// Timer is the countdown state machine. Pausing freezes the remaining
// seconds as they are; resuming restarts the wall clock from now, so
// time spent paused or suspended is not reconciled against the clock.
// The live countdown is never persisted: completed intervals are
// recorded through the session service, and a restart loses any timer
// that was running.
type Timer struct {
	mu       sync.Mutex
	sessions *Service
	lengths  Durations
	now      func() time.Time

	running     bool
	secondsLeft int
	typ         SessionType
	startedAt   time.Time
	pausedAt    time.Time
}

func NewTimer(sessions *Service, lengths Durations) *Timer {
	if lengths == (Durations{}) {
		lengths = DefaultDurations()
	}

	return &Timer{
		sessions:    sessions,
		lengths:     lengths,
		now:         time.Now,
		secondsLeft: lengths.Work,
		typ:         TypeWork,
	}
}

// Start begins a fresh countdown. A non-positive seconds value picks
// the configured length for the session type.
func (t *Timer) Start(typ SessionType, seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !typ.valid() {
		typ = TypeWork
	}

	if seconds <= 0 {
		seconds = t.lengths.seconds(typ)
	}

	t.running = true
	t.secondsLeft = seconds
	t.typ = typ
	t.startedAt = t.now()
	t.pausedAt = time.Time{}
}

// Pause freezes the countdown at its current value.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	t.pausedAt = t.now()
}

// Resume continues a paused countdown from its frozen value.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.secondsLeft <= 0 {
		return
	}

	t.running = true
	t.startedAt = t.now()
	t.pausedAt = time.Time{}
}

// Reset returns the timer to an idle work countdown.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.secondsLeft = t.lengths.Work
	t.typ = TypeWork
	t.startedAt = time.Time{}
	t.pausedAt = time.Time{}
}

// Tick advances the countdown by one second. On reaching zero it
// records exactly one completed session and stops.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.secondsLeft <= 0 {
		return
	}

	t.secondsLeft--
	if t.secondsLeft > 0 {
		return
	}

	t.running = false

	_, err := t.sessions.Add(Session{
		Start:     t.startedAt.UnixMilli(),
		End:       t.now().UnixMilli(),
		Type:      t.typ,
		Completed: true,
	})
	if err != nil {
		slog.Error("recording pomodoro session", "error", err)
	}
}

// State returns a snapshot of the countdown.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := TimerState{
		Running:     t.running,
		SecondsLeft: t.secondsLeft,
		Type:        t.typ,
	}

	if !t.startedAt.IsZero() {
		started := t.startedAt
		state.StartedAt = &started
	}

	if !t.pausedAt.IsZero() {
		paused := t.pausedAt
		state.PausedAt = &paused
	}

	return state
}

// Run drives the countdown with a 1-second ticker until ctx is
// cancelled. Ticks while the timer is not running are no-ops, so a
// single Run loop never produces duplicate countdowns.
func (t *Timer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}
