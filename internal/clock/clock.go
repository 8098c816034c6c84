// Package clock provides the time source used by the registries and the
// display layer. Use Real in production and Manual in tests.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the actual current time.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }

// Manual is a clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock pinned to the given instant.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// Now returns the pinned instant.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and returns the new instant.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// FormatRelative returns a human-friendly relative timestamp using the
// provided clock. Examples: "now", "5m ago", "3h ago", "2d ago".
func FormatRelative(t time.Time, c Clock) string {
	return FormatRelativeFrom(t, c.Now())
}

// FormatRelativeFrom returns a human-friendly relative timestamp relative to
// the given reference time. Future timestamps are rendered with an "in"
// prefix ("in 2d").
func FormatRelativeFrom(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in " + span(-d)
	}
	if d < time.Minute {
		return "now"
	}
	return span(d) + " ago"
}

func span(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "under 1m"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dw", int(d.Hours()/(24*7)))
	default:
		return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
	}
}
