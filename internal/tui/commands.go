package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/storage"
	"github.com/pders01/tmr/internal/timer"
)

type snapshotLoadedMsg struct {
	snapshot timer.Snapshot
	err      error
}

type helpRenderedMsg struct {
	content string
}

type errorMsg struct {
	err error
}

func (a *App) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := a.store.LoadSnapshot()
		return snapshotLoadedMsg{snapshot: snap, err: err}
	}
}

func (a *App) appendSession(session *storage.Session) tea.Cmd {
	if a.store == nil || session == nil {
		return nil
	}
	return func() tea.Msg {
		if err := a.store.AppendSession(session); err != nil {
			return errorMsg{err: wrapErr("saving session", err)}
		}
		return nil
	}
}

// saveAndQuit persists the countdown before the program exits. It runs as a
// single command so the write completes before tea.Quit is delivered.
func (a *App) saveAndQuit(snap timer.Snapshot, session *storage.Session) tea.Cmd {
	return func() tea.Msg {
		if a.store != nil {
			if session != nil {
				if err := a.store.AppendSession(session); err != nil {
					debuglog.Errorf("saving session on quit: %v", err)
				}
			}
			if err := a.store.SaveSnapshot(snap); err != nil {
				debuglog.Errorf("saving snapshot on quit: %v", err)
			}
		}
		return tea.Quit()
	}
}

func (a *App) renderHelp() tea.Cmd {
	return func() tea.Msg {
		var sessions []*storage.Session
		if a.store != nil {
			var err error
			sessions, err = a.store.RecentSessions(a.config.State.HistoryLimit)
			if err != nil {
				debuglog.Warnf("loading sessions for help: %v", err)
			}
		}

		r, err := a.getRenderer()
		if err != nil {
			return helpRenderedMsg{content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(a.helpMarkdown(sessions))
		if err != nil {
			return helpRenderedMsg{content: fmt.Sprintf("Failed to render help: %s\n\nPress Esc to go back.", err)}
		}
		return helpRenderedMsg{content: rendered}
	}
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 100 {
		wordWrapWidth = 100
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40
	}

	if a.glamourRenderer == nil || a.rendererWidth != wordWrapWidth {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

// helpMarkdown describes keys, presets and recent sessions.
func (a *App) helpMarkdown(sessions []*storage.Session) string {
	var b strings.Builder
	b.WriteString("# tmr\n\n")
	b.WriteString("Add time with the preset keys, then start the countdown. ")
	b.WriteString("The clock keeps running at zero until you pause or reset it.\n\n")

	b.WriteString("## Keys\n\n| Key | Action |\n|---|---|\n")
	for _, group := range a.keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\n## Presets\n\n")
	for i, d := range a.config.Timer.Presets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, presetLabel(d))
	}

	if path := a.config.State.Path; path != "" && a.store != nil {
		fmt.Fprintf(&b, "\nState is kept in `%s`.\n", truncateMiddle(path, 60))
	}

	if len(sessions) > 0 {
		b.WriteString("\n## Recent sessions\n\n| Ended | Counted | Left | Reason |\n|---|---|---|---|\n")
		for _, s := range sessions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				s.EndedAt.Local().Format("Jan 2 15:04"),
				timer.Project(time.Duration(s.CountedMS())*time.Millisecond),
				timer.Project(time.Duration(s.EndRemainingMS)*time.Millisecond),
				s.Reason)
		}
	}

	return b.String()
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
