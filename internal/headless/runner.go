// Package headless runs a countdown without the interactive screen, printing
// the clock to a writer on every frame.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/frame"
	"github.com/pders01/tmr/internal/timer"
)

type Options struct {
	Interval time.Duration
	Clock    frame.Clock
	// Inline rewrites a single terminal line instead of printing one per frame.
	Inline bool
}

type Runner struct {
	engine *timer.Engine
	out    io.Writer
	opts   Options
	last   string
}

func NewRunner(engine *timer.Engine, out io.Writer, opts Options) *Runner {
	if opts.Clock == nil {
		opts.Clock = frame.SystemClock
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	return &Runner{engine: engine, out: out, opts: opts}
}

// Run adds the durations, starts the engine and prints the clock until it
// reaches zero or ctx is cancelled. It reports whether the countdown finished.
func (r *Runner) Run(ctx context.Context, durations ...time.Duration) (bool, error) {
	for _, d := range durations {
		if err := r.engine.AddTime(d); err != nil {
			return false, err
		}
	}

	log := debuglog.WithFields(map[string]interface{}{"mode": "headless"})
	log.Infof("countdown %s", r.engine.Digits())

	r.engine.Start(r.opts.Clock.Now())
	if err := r.print(); err != nil {
		return false, err
	}

	var writeErr error
	loop := &frame.Loop{Interval: r.opts.Interval, Clock: r.opts.Clock}
	err := loop.Run(ctx, func(now time.Time) bool {
		r.engine.Tick(now)
		if writeErr = r.print(); writeErr != nil {
			return false
		}
		return !r.engine.Expired()
	})
	if err != nil {
		return false, err
	}
	if writeErr != nil {
		return false, fmt.Errorf("writing clock: %w", writeErr)
	}

	r.engine.Pause()
	finished := r.engine.Expired()
	if r.opts.Inline {
		fmt.Fprintln(r.out)
	}
	if finished {
		log.Infof("countdown finished")
	} else {
		log.Infof("countdown interrupted at %s", r.engine.Digits())
	}
	return finished, nil
}

func (r *Runner) print() error {
	line := r.engine.Digits().String()
	if line == r.last {
		return nil
	}
	r.last = line

	var err error
	if r.opts.Inline {
		_, err = fmt.Fprintf(r.out, "\r%s", line)
	} else {
		_, err = fmt.Fprintln(r.out, line)
	}
	return err
}
