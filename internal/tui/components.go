package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderButton draws one on-screen button with its key hint.
func renderButton(key, label string, active bool) string {
	style := ButtonStyle
	if active {
		style = ButtonActiveStyle
	}
	return style.Render(ButtonKeyStyle.Render(key) + " " + label)
}

// renderCentered centers the provided content within the given width/height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderSeparator draws a horizontal rule across width columns.
func renderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}
