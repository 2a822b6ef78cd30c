package timer

import (
	"fmt"
	"time"
)

// Snapshot is the serializable form of an engine, used by hosts that want to
// keep a countdown across restarts.
type Snapshot struct {
	RemainingMillis int64     `json:"remaining_ms"`
	Running         bool      `json:"running"`
	SavedAt         time.Time `json:"saved_at"`
}

func (e *Engine) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		RemainingMillis: e.remaining.Milliseconds(),
		Running:         e.running,
		SavedAt:         now,
	}
}

// Restore replaces the engine state with s. A running snapshot resumes with
// its reference at now; time spent while the host was down is not counted.
func (e *Engine) Restore(s Snapshot, now time.Time) error {
	if s.RemainingMillis < 0 {
		return fmt.Errorf("restore remaining %dms: %w", s.RemainingMillis, ErrInvalidArgument)
	}
	e.remaining = time.Duration(s.RemainingMillis) * time.Millisecond
	e.running = s.Running
	e.ref = now
	return nil
}
