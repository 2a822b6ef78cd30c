package tui

import (
	"strings"

	"github.com/pders01/tmr/internal/timer"
)

// Three-row block font for the clock glyphs.
var bigGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ", "▀", "▀"},
	'.': {" ", " ", "▀"},
}

// renderBigClock draws HH:MM:SS.mmm in the block font, one glyph per digit.
func renderBigClock(d timer.Digits) string {
	var rows [3]strings.Builder
	for i, r := range d.Glyphs() {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(g[row])
		}
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}

// renderSmallClock spaces the digits out the way the big clock does.
func renderSmallClock(d timer.Digits) string {
	glyphs := d.Glyphs()
	parts := make([]string, len(glyphs))
	for i, r := range glyphs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
