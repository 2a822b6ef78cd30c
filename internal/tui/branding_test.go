package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tmr/internal/config"
)

func TestShowBanner(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	ShowBanner("1.0.0-test")

	w.Close()
	os.Stdout = old
	out := <-outC

	if !strings.Contains(out, "Countdown Timer") {
		t.Errorf("Expected banner to contain 'Countdown Timer', got: %s", out)
	}
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("Expected banner to contain border characters, got: %s", out)
	}
	if !strings.Contains(out, "◆") {
		t.Errorf("Expected banner to contain separator symbols, got: %s", out)
	}
	if !strings.Contains(out, "v1.0.0-test") {
		t.Errorf("Expected banner to contain version 'v1.0.0-test', got: %s", out)
	}
}

func TestGetCompactBanner(t *testing.T) {
	message := "Press 1 to add time"
	result := GetCompactBanner(message)

	if !strings.Contains(result, message) {
		t.Errorf("Expected compact banner to contain '%s', got: %s", message, result)
	}
	if !strings.Contains(result, "▀█▀") {
		t.Errorf("Expected compact banner to contain logo elements, got: %s", result)
	}
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme(config.TestConfig().UI.Colors)

	ApplyTheme(config.UIColors{Primary: "#123456"})

	if PrimaryColor != lipgloss.Color("#123456") {
		t.Errorf("PrimaryColor = %v, want #123456", PrimaryColor)
	}
	if SecondaryColor == "" {
		t.Error("empty config color should keep the existing value")
	}
}
