// Package activity builds the cross-domain recent-activity feed.
// Every source normalizes its records onto a single OccurredAt
// timestamp, so the merge never has to guess which date field a
// domain keeps its history in.
package activity

import (
	"sort"
	"time"
)

// Event is one feed entry.
type Event struct {
	Domain     string    `json:"domain"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Source contributes one domain's events to the feed.
type Source interface {
	Name() string
	Events() []Event
}

// Feed merges events from every registered source.
type Feed struct {
	sources []Source
}

func NewFeed(sources ...Source) *Feed {
	return &Feed{sources: sources}
}

// Recent returns the n most recent events across all sources, newest
// first. Ties keep source registration order.
func (f *Feed) Recent(n int) []Event {
	var events []Event
	for _, src := range f.sources {
		events = append(events, src.Events()...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.After(events[j].OccurredAt)
	})

	if n > 0 && len(events) > n {
		events = events[:n]
	}

	return events
}
