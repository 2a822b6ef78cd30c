package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Duration
		expected Digits
		str      string
	}{
		{"zero", 0, Digits{}, "00:00:00.000"},
		{"one hour two minutes three seconds", 3723000 * time.Millisecond, Digits{Hours: 1, Minutes: 2, Seconds: 3}, "01:02:03.000"},
		{"sub-second", 1234 * time.Millisecond, Digits{Seconds: 1, Millis: 234}, "00:00:01.234"},
		{"hours wrap at sixty", 61 * time.Hour, Digits{Hours: 1}, "01:00:00.000"},
		{"sub-millisecond truncated", 999 * time.Microsecond, Digits{}, "00:00:00.000"},
		{"negative clamps", -time.Second, Digits{}, "00:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Project(tt.in)
			assert.Equal(t, tt.expected, d)
			assert.Equal(t, tt.str, d.String())
		})
	}
}

func TestDigits_Values(t *testing.T) {
	d := Project(45*time.Minute + 9*time.Second + 87*time.Millisecond)
	assert.Equal(t, [9]int{0, 0, 4, 5, 0, 9, 0, 8, 7}, d.Values())
}

func TestDigits_Glyphs(t *testing.T) {
	g := Project(3723456 * time.Millisecond).Glyphs()
	require.Len(t, g, 12)
	assert.Equal(t, "01:02:03.456", string(g))
	assert.Equal(t, ':', g[2])
	assert.Equal(t, '.', g[8])
}

func TestEngine_DigitsTracksRemaining(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.AddTime(3723*time.Second))
	assert.Equal(t, "01:02:03.000", e.Digits().String())

	e.Start(t0)
	e.Tick(t0.Add(1500 * time.Millisecond))
	assert.Equal(t, "01:02:01.500", e.Digits().String())
}
