// Package frame drives periodic redraw/update callbacks. It offers two hosts:
// a bubbletea subscription whose frames arrive as messages, and a blocking
// ticker loop for non-interactive use.
package frame

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is roughly one display refresh at 30 frames per second.
const DefaultInterval = 33 * time.Millisecond

// Clock provides the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Msg is delivered to the bubbletea program once per frame.
type Msg struct {
	ID   uint64
	Time time.Time
}

// Subscription is a cancellable frame source for a bubbletea model. Frames are
// chained: the model asks for the next one after handling the current one.
// Once cancelled, no frame (including one already in flight) is accepted.
type Subscription struct {
	interval time.Duration
	id       uint64
	active   bool
}

func NewSubscription(interval time.Duration) *Subscription {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Subscription{interval: interval}
}

// Begin activates the subscription under a fresh generation and returns the
// command for its first frame. Frames of earlier generations are dropped.
func (s *Subscription) Begin() tea.Cmd {
	s.id++
	s.active = true
	return s.Next()
}

// Next returns the command producing the following frame, or nil when the
// subscription is not active.
func (s *Subscription) Next() tea.Cmd {
	if !s.active {
		return nil
	}
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return Msg{ID: id, Time: t}
	})
}

// Accept reports whether msg belongs to the live generation.
func (s *Subscription) Accept(msg Msg) bool {
	return s.active && msg.ID == s.id
}

// Cancel stops the subscription. It is safe to call repeatedly.
func (s *Subscription) Cancel() {
	s.active = false
}

// ID is the current generation. Frames carry the ID they were scheduled under.
func (s *Subscription) ID() uint64 {
	return s.id
}

func (s *Subscription) Active() bool {
	return s.active
}

func (s *Subscription) Interval() time.Duration {
	return s.interval
}

// Loop calls a function once per interval on the calling goroutine.
type Loop struct {
	Interval time.Duration
	Clock    Clock
}

// Run blocks, invoking fn with the clock's time each interval, until ctx is
// cancelled or fn returns false. Cancellation is not reported as an error.
func (l *Loop) Run(ctx context.Context, fn func(now time.Time) bool) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	clock := l.Clock
	if clock == nil {
		clock = SystemClock
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !fn(clock.Now()) {
				return nil
			}
		}
	}
}
