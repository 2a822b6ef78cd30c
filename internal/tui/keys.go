package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pders01/tmr/internal/config"
)

// KeyMap holds the timer screen's bindings. It implements help.KeyMap.
type KeyMap struct {
	Presets []key.Binding
	Start   key.Binding
	Pause   key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// normalizeKey maps config spellings to bubbletea key strings.
func normalizeKey(k string) string {
	switch strings.ToLower(strings.TrimSpace(k)) {
	case "space", "spacebar":
		return " "
	default:
		return strings.TrimSpace(k)
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func binding(k, desc string, extra ...string) key.Binding {
	keys := append([]string{normalizeKey(k)}, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(displayKey(normalizeKey(k)), desc),
	)
}

// NewKeyMap builds bindings from config. Presets take the digit keys 1-9 in
// order.
func NewKeyMap(cfg *config.Config) KeyMap {
	b := cfg.Keys.Bindings
	km := KeyMap{
		Start:  binding(b.Start, "start"),
		Pause:  binding(b.Pause, "pause"),
		Toggle: binding(b.Toggle, "start/pause"),
		Reset:  binding(b.Reset, "reset"),
		Help:   binding(b.Help, "help"),
		Quit:   binding(b.Quit, "quit", "ctrl+c"),
	}
	for i, d := range cfg.Timer.Presets {
		km.Presets = append(km.Presets, presetBinding(i, d))
	}
	return km
}

func presetBinding(i int, d time.Duration) key.Binding {
	k := strconv.Itoa(i + 1)
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, presetLabel(d)),
	)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Presets,
		{k.Start, k.Pause, k.Toggle, k.Reset},
		{k.Help, k.Quit},
	}
}
