package tui

import (
	"fmt"
	"time"
)

// Canonical short status messages used across the app.
const (
	MsgStarted     = "Running"
	MsgPaused      = "Paused"
	MsgReset       = "Reset"
	MsgDone        = "Time's up"
	MsgNothingLeft = "Add time before starting"
	MsgLoadingHelp = "Loading help…"
)

func MsgAdded(d time.Duration) string {
	return "Added " + presetLabel(d)
}

func MsgRestored(remaining string, running bool) string {
	if running {
		return fmt.Sprintf("Resumed at %s", remaining)
	}
	return fmt.Sprintf("Restored %s", remaining)
}
