package timer

import (
	"fmt"
	"time"
)

// Digits is the display projection of a remaining duration. Hours wrap at 60
// so the clock always fits in two digits.
type Digits struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// Project decomposes d into clock fields. Negative durations project as zero.
func Project(d time.Duration) Digits {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return Digits{
		Hours:   int(ms / 1000 / 60 / 60 % 60),
		Minutes: int(ms / 1000 / 60 % 60),
		Seconds: int(ms / 1000 % 60),
		Millis:  int(ms % 1000),
	}
}

// Glyphs returns the clock as individual characters, separators included:
// H H : M M : S S . m m m
func (d Digits) Glyphs() []rune {
	return []rune(d.String())
}

// Values returns the nine numeric digits in display order.
func (d Digits) Values() [9]int {
	return [9]int{
		d.Hours / 10, d.Hours % 10,
		d.Minutes / 10, d.Minutes % 10,
		d.Seconds / 10, d.Seconds % 10,
		d.Millis / 100, d.Millis / 10 % 10, d.Millis % 10,
	}
}

func (d Digits) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", d.Hours, d.Minutes, d.Seconds, d.Millis)
}
