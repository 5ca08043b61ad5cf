package reminder

import (
	"context"
	"log/slog"
	"time"
)

const (
	checkInterval    = time.Minute
	alertSuppression = 5 * time.Minute
)

// NotifyFunc receives the batch of due reminders on each alert.
type NotifyFunc func(due []Reminder)

// Checker polls the reminder list and raises an alert when open
// reminders fall due, throttled so the same batch is not re-announced
// more than once per suppression window.
type Checker struct {
	svc       *Service
	notify    NotifyFunc
	interval  time.Duration
	suppress  time.Duration
	lastAlert time.Time
}

func NewChecker(svc *Service, notify NotifyFunc) *Checker {
	return &Checker{
		svc:      svc,
		notify:   notify,
		interval: checkInterval,
		suppress: alertSuppression,
	}
}

// Run checks immediately, then once per interval until ctx is
// cancelled.
func (c *Checker) Run(ctx context.Context) {
	c.check(c.svc.now())

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.check(now)
		}
	}
}

func (c *Checker) check(now time.Time) {
	due := c.svc.Due(now)
	if len(due) == 0 {
		return
	}

	if !c.lastAlert.IsZero() && now.Sub(c.lastAlert) <= c.suppress {
		return
	}

	slog.Info("reminders due", "count", len(due))
	c.lastAlert = now

	if c.notify != nil {
		c.notify(due)
	}
}
