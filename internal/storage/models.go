package storage

import (
	"time"
)

// EndReason records why a countdown run stopped.
type EndReason string

const (
	EndPaused  EndReason = "paused"
	EndReset   EndReason = "reset"
	EndExpired EndReason = "expired"
	EndQuit    EndReason = "quit"
)

// Session is one stretch of running time, from Start until the run stopped.
type Session struct {
	ID               string    `json:"id"`
	StartedAt        time.Time `json:"started_at"`
	EndedAt          time.Time `json:"ended_at"`
	StartRemainingMS int64     `json:"start_remaining_ms"`
	EndRemainingMS   int64     `json:"end_remaining_ms"`
	AddedMS          int64     `json:"added_ms"`
	Reason           EndReason `json:"reason"`
}

// CountedMS is the time actually counted down during the session.
func (s *Session) CountedMS() int64 {
	counted := s.StartRemainingMS + s.AddedMS - s.EndRemainingMS
	if counted < 0 {
		return 0
	}
	return counted
}
