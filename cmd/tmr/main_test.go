package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/tmr/internal/config"
	"github.com/pders01/tmr/internal/storage"
	"github.com/pders01/tmr/internal/timer"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-outC
}

// execute runs the root command with args against an isolated home directory
// and returns what it wrote.
func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	configPath, statePath, logLevel = "", "", ""
	quiet, noRestore, keepHistory, countLines = false, false, false, false
	countInterval = 100 * time.Millisecond

	cfgFile := filepath.Join(home, "config.toml")
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		require.NoError(t, config.GenerateDefaultConfig(cfgFile))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", cfgFile, "--state", filepath.Join(home, "state.db")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(nil, nil)
	})

	// Version is "dev" by default in tests
	if !strings.Contains(out, "tmr dev") {
		t.Errorf("Expected version output to contain 'tmr dev', got: %s", out)
	}
	if !strings.Contains(out, "Countdown timer") {
		t.Errorf("Expected version output to contain 'Countdown timer', got: %s", out)
	}
	if !strings.Contains(out, "github.com/pders01/tmr") {
		t.Errorf("Expected version output to contain 'github.com/pders01/tmr', got: %s", out)
	}
}

func TestGenerateConfigCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ".config", "tmr", "config.toml")
	t.Setenv("HOME", tmpDir)
	configPath = ""

	out := captureStdout(t, func() {
		configGenCmd.Run(nil, nil)
	})

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configFile)
	}
	if !strings.Contains(out, "Generated default configuration at:") {
		t.Errorf("Expected output to contain 'Generated default configuration at:', got: %s", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := execute(t, home, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "[timer]")
	assert.Contains(t, out, "frame_interval")
	assert.Contains(t, out, "33ms")
	assert.Contains(t, out, "[keys.bindings]")
	assert.Contains(t, out, filepath.Join(home, "state.db"))
}

func TestCountCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	start := time.Now()
	out, err := execute(t, home, "count", "--lines", "--interval", "5ms", "40ms")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "00:00:00.040", lines[0])
	assert.Equal(t, "00:00:00.000", lines[len(lines)-1])
}

func TestCountCommandRejectsBadInput(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := execute(t, home, "count", "soon")
	assert.Error(t, err)

	_, err = execute(t, home, "count", "--interval", "0s", "5")
	assert.Error(t, err)
}

func TestStateCommands(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := execute(t, home, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved timer.")

	store, err := storage.NewStore(filepath.Join(home, "state.db"), time.Second)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(timer.Snapshot{RemainingMillis: 90500, Running: true, SavedAt: time.Now()}))
	require.NoError(t, store.AppendSession(&storage.Session{
		EndedAt:          time.Now(),
		StartRemainingMS: 120000,
		EndRemainingMS:   90500,
		Reason:           storage.EndQuit,
	}))
	require.NoError(t, store.Close())

	out, err = execute(t, home, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved timer: 00:01:30.500 (running)")
	assert.Contains(t, out, "counted 00:00:29.500")
	assert.Contains(t, out, "quit")

	out, err = execute(t, home, "state", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared saved state.")

	out, err = execute(t, home, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved timer.")
	assert.NotContains(t, out, "Recent sessions")
}
