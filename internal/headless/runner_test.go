package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/tmr/internal/timer"
)

// steppingClock advances by step every time it is read.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestRunner_CountsDownToZero(t *testing.T) {
	clock := &steppingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: 500 * time.Millisecond}
	var out bytes.Buffer
	engine := timer.NewEngine()

	r := NewRunner(engine, &out, Options{Interval: time.Millisecond, Clock: clock})
	finished, err := r.Run(context.Background(), time.Second, 500*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, finished)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"00:00:01.500",
		"00:00:01.000",
		"00:00:00.500",
		"00:00:00.000",
	}, lines)
	assert.False(t, engine.Running())
}

func TestRunner_CancelledBeforeZero(t *testing.T) {
	clock := &steppingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	var out bytes.Buffer
	engine := timer.NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(engine, &out, Options{Interval: time.Hour, Clock: clock})
	finished, err := r.Run(ctx, time.Minute)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, time.Minute, engine.State().Remaining)
	assert.False(t, engine.Running())
}

func TestRunner_InlineOutput(t *testing.T) {
	clock := &steppingClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
	var out bytes.Buffer

	r := NewRunner(timer.NewEngine(), &out, Options{Interval: time.Millisecond, Clock: clock, Inline: true})
	finished, err := r.Run(context.Background(), time.Second)
	require.NoError(t, err)
	assert.True(t, finished)
	assert.Equal(t, "\r00:00:01.000\r00:00:00.000\n", out.String())
}

func TestRunner_RejectsNegative(t *testing.T) {
	r := NewRunner(timer.NewEngine(), &bytes.Buffer{}, Options{})
	_, err := r.Run(context.Background(), -time.Second)
	assert.True(t, errors.Is(err, timer.ErrInvalidArgument))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunner_WriteError(t *testing.T) {
	r := NewRunner(timer.NewEngine(), failingWriter{}, Options{Interval: time.Millisecond})
	_, err := r.Run(context.Background(), time.Second)
	assert.Error(t, err)
}
