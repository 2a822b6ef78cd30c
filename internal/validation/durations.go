package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxPresets is the number of preset keys the timer screen can bind (1-9).
const MaxPresets = 9

var (
	ErrNoDuration       = errors.New("no duration given")
	ErrNonPositive      = errors.New("duration must be positive")
	ErrTooManyPresets   = fmt.Errorf("at most %d presets are supported", MaxPresets)
	ErrIntervalTooShort = errors.New("frame interval below 1ms")
)

// ValidatePresets checks the add-time presets of the timer screen.
func ValidatePresets(presets []time.Duration) error {
	if len(presets) == 0 {
		return ErrNoDuration
	}
	if len(presets) > MaxPresets {
		return ErrTooManyPresets
	}
	for i, p := range presets {
		if p <= 0 {
			return fmt.Errorf("preset %d (%s): %w", i+1, p, ErrNonPositive)
		}
	}
	return nil
}

func ValidateInterval(d time.Duration) error {
	if d < time.Millisecond {
		return fmt.Errorf("%s: %w", d, ErrIntervalTooShort)
	}
	return nil
}

// ParseDurations parses command-line durations such as "1m30s" or "90s". A bare
// number is read as seconds. Every value must be positive.
func ParseDurations(args []string) ([]time.Duration, error) {
	if len(args) == 0 {
		return nil, ErrNoDuration
	}
	out := make([]time.Duration, 0, len(args))
	for _, arg := range args {
		d, err := parseDuration(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNoDuration
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
		s += "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrNonPositive)
	}
	return d, nil
}
