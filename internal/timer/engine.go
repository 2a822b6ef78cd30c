package timer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for commands whose input can never be valid,
// such as adding a negative amount of time.
var ErrInvalidArgument = errors.New("invalid argument")

// State is the read-only view of the engine handed to display surfaces.
type State struct {
	Remaining time.Duration
	Running   bool
}

// RemainingMillis returns the remaining time in whole milliseconds.
func (s State) RemainingMillis() int64 {
	return s.Remaining.Milliseconds()
}

// Engine owns a single countdown. It is not safe for concurrent use: commands
// and ticks must be applied from one goroutine, or serialized by the host.
type Engine struct {
	remaining time.Duration
	running   bool
	ref       time.Time
}

// NewEngine returns a paused engine with no remaining time.
func NewEngine() *Engine {
	return &Engine{}
}

// AddTime increases the remaining time by d, running or not.
func (e *Engine) AddTime(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("add time %s: %w", d, ErrInvalidArgument)
	}
	e.remaining += d
	return nil
}

// Start marks the engine running and uses now as the reference for the next
// tick. Calling Start while running only re-arms the reference.
func (e *Engine) Start(now time.Time) {
	e.running = true
	e.ref = now
}

func (e *Engine) Pause() {
	e.running = false
}

func (e *Engine) Reset() {
	e.running = false
	e.remaining = 0
}

// Tick subtracts the time elapsed since the previous reference. Paused engines
// ignore ticks and keep their reference untouched, so a later Start never
// consumes paused time.
func (e *Engine) Tick(now time.Time) {
	if !e.running {
		return
	}
	elapsed := now.Sub(e.ref)
	e.ref = now
	if elapsed <= 0 {
		return
	}
	if elapsed >= e.remaining {
		e.remaining = 0
		return
	}
	e.remaining -= elapsed
}

func (e *Engine) State() State {
	return State{Remaining: e.remaining, Running: e.running}
}

func (e *Engine) Running() bool {
	return e.running
}

// Expired reports whether the countdown has reached zero. It says nothing about
// the running flag, which stays set until the user pauses or resets.
func (e *Engine) Expired() bool {
	return e.remaining == 0
}

// Digits projects the current remaining time for display.
func (e *Engine) Digits() Digits {
	return Project(e.remaining)
}
