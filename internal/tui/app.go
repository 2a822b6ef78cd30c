package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tmr/internal/config"
	"github.com/pders01/tmr/internal/debuglog"
	"github.com/pders01/tmr/internal/frame"
	"github.com/pders01/tmr/internal/storage"
	"github.com/pders01/tmr/internal/timer"
)

// StateStore persists the countdown between runs. A nil store disables
// persistence.
type StateStore interface {
	SaveSnapshot(timer.Snapshot) error
	LoadSnapshot() (timer.Snapshot, error)
	AppendSession(*storage.Session) error
	RecentSessions(limit int) ([]*storage.Session, error)
}

type App struct {
	config          *config.Config
	store           StateStore
	engine          *timer.Engine
	clock           frame.Clock
	frames          *frame.Subscription
	keys            KeyMap
	help            help.Model
	view            View
	session         *storage.Session // open while the countdown is running
	touched         bool             // a command reached the engine; a late snapshot must not replace it
	status          string
	statusKind      StatusKind
	err             error
	helpContent     string
	width           int
	height          int
	quitting        bool
	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(store StateStore, cfg *config.Config) *App {
	ApplyTheme(cfg.UI.Colors)

	return &App{
		config: cfg,
		store:  store,
		engine: timer.NewEngine(),
		clock:  frame.SystemClock,
		frames: frame.NewSubscription(cfg.Timer.FrameInterval),
		keys:   NewKeyMap(cfg),
		help:   help.New(),
		view:   ViewTimer,
	}
}

// Engine exposes the countdown, mainly for tests and the CLI.
func (a *App) Engine() *timer.Engine {
	return a.engine
}

func (a *App) Init() tea.Cmd {
	if a.store != nil && a.config.State.Restore {
		return a.loadSnapshot()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width

	case tea.KeyMsg:
		return a.handleKey(msg)

	case frame.Msg:
		return a, a.onFrame(msg)

	case snapshotLoadedMsg:
		return a, a.onSnapshotLoaded(msg)

	case helpRenderedMsg:
		a.helpContent = msg.content
		if a.status == MsgLoadingHelp {
			a.setStatus("", StatusInfo)
		}

	case errorMsg:
		a.err = msg.err
		debuglog.Errorf("%v", msg.err)
	}

	return a, nil
}

// onFrame applies one tick. Frames from a cancelled or replaced subscription
// are dropped without touching the engine.
func (a *App) onFrame(msg frame.Msg) tea.Cmd {
	if !a.frames.Accept(msg) {
		return nil
	}

	wasExpired := a.engine.Expired()
	a.engine.Tick(msg.Time)

	var cmds []tea.Cmd
	if !wasExpired && a.engine.Expired() {
		debuglog.Infof("countdown reached zero")
		a.setStatus(MsgDone, StatusSuccess)
		cmds = append(cmds, a.endSession(storage.EndExpired, msg.Time, 0))
	}
	if a.engine.Running() {
		cmds = append(cmds, a.frames.Next())
	} else {
		a.frames.Cancel()
	}
	return tea.Batch(cmds...)
}

func (a *App) onSnapshotLoaded(msg snapshotLoadedMsg) tea.Cmd {
	if msg.err != nil {
		if !isNotFound(msg.err) {
			a.err = wrapErr("restoring timer", msg.err)
			debuglog.Errorf("%v", a.err)
		}
		return nil
	}

	if a.touched {
		debuglog.Infof("ignoring saved timer, already in use")
		return nil
	}

	now := a.clock.Now()
	if err := a.engine.Restore(msg.snapshot, now); err != nil {
		a.err = wrapErr("restoring timer", err)
		return nil
	}

	state := a.engine.State()
	debuglog.WithFields(map[string]interface{}{
		"remaining_ms": state.RemainingMillis(),
		"running":      state.Running,
	}).Infof("restored snapshot")

	if !state.Running {
		a.frames.Cancel()
	}
	if state.Remaining == 0 && !state.Running {
		return nil
	}
	a.setStatus(MsgRestored(a.engine.Digits().String(), state.Running), StatusInfo)
	if state.Running {
		a.beginSession(now)
		return a.frames.Begin()
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.view == ViewHelp {
		return a.handleHelpKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Help):
		a.view = ViewHelp
		a.setStatus(MsgLoadingHelp, StatusInfo)
		return a, a.renderHelp()
	case key.Matches(msg, a.keys.Start):
		return a, a.start()
	case key.Matches(msg, a.keys.Pause):
		return a, a.pause()
	case key.Matches(msg, a.keys.Toggle):
		if a.engine.Running() {
			return a, a.pause()
		}
		return a, a.start()
	case key.Matches(msg, a.keys.Reset):
		return a, a.reset()
	}

	for i, b := range a.keys.Presets {
		if key.Matches(msg, b) {
			return a, a.addTime(a.config.Timer.Presets[i])
		}
	}

	return a, nil
}

func (a *App) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return a, a.quit()
	case msg.String() == "esc", key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Quit):
		a.view = ViewTimer
		return a, nil
	}
	return a, nil
}

func (a *App) addTime(d time.Duration) tea.Cmd {
	if err := a.engine.AddTime(d); err != nil {
		a.err = err
		return nil
	}
	a.touched = true
	a.err = nil
	a.setStatus(MsgAdded(d), StatusInfo)
	debuglog.Debugf("added %s, remaining %s", d, a.engine.Digits())

	if a.engine.Running() {
		if a.session == nil {
			// time added after the countdown hit zero opens a new run
			a.beginSession(a.clock.Now())
		} else {
			a.session.AddedMS += d.Milliseconds()
		}
		return nil
	}
	if a.config.Timer.AutoStart {
		return a.start()
	}
	return nil
}

func (a *App) start() tea.Cmd {
	a.touched = true
	now := a.clock.Now()
	wasRunning := a.engine.Running()
	a.engine.Start(now)
	a.err = nil

	if a.engine.Expired() {
		a.setStatus(MsgNothingLeft, StatusWarn)
	} else {
		a.setStatus(MsgStarted, StatusInfo)
		if !wasRunning || a.session == nil {
			a.beginSession(now)
		}
	}

	if a.frames.Active() {
		return nil
	}
	return a.frames.Begin()
}

func (a *App) pause() tea.Cmd {
	a.touched = true
	if !a.engine.Running() {
		return nil
	}
	a.engine.Pause()
	a.frames.Cancel()
	a.setStatus(MsgPaused, StatusInfo)
	now := a.clock.Now()
	return a.endSession(storage.EndPaused, now, a.engine.State().RemainingMillis())
}

func (a *App) reset() tea.Cmd {
	a.touched = true
	left := a.engine.State().RemainingMillis()
	a.engine.Reset()
	a.frames.Cancel()
	a.err = nil
	a.setStatus(MsgReset, StatusInfo)
	return a.endSession(storage.EndReset, a.clock.Now(), left)
}

// quit tears down the frame subscription first so no tick lands after the
// snapshot is taken.
func (a *App) quit() tea.Cmd {
	a.frames.Cancel()
	a.quitting = true

	now := a.clock.Now()
	session := a.closeSession(storage.EndQuit, now, a.engine.State().RemainingMillis())
	if a.store == nil {
		return tea.Quit
	}
	return a.saveAndQuit(a.engine.Snapshot(now), session)
}

func (a *App) beginSession(now time.Time) {
	a.session = &storage.Session{
		StartedAt:        now,
		StartRemainingMS: a.engine.State().RemainingMillis(),
	}
}

// closeSession finishes the open session, if any, and hands it back.
func (a *App) closeSession(reason storage.EndReason, now time.Time, remainingMS int64) *storage.Session {
	s := a.session
	if s == nil {
		return nil
	}
	a.session = nil
	s.EndedAt = now
	s.EndRemainingMS = remainingMS
	s.Reason = reason
	debuglog.WithFields(map[string]interface{}{
		"reason":     reason,
		"counted_ms": s.CountedMS(),
	}).Infof("session ended")
	return s
}

func (a *App) endSession(reason storage.EndReason, now time.Time, remainingMS int64) tea.Cmd {
	return a.appendSession(a.closeSession(reason, now, remainingMS))
}

func (a *App) setStatus(text string, kind StatusKind) {
	a.status = text
	a.statusKind = kind
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	contentHeight := a.height - 3
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch a.view {
	case ViewHelp:
		if a.helpContent == "" {
			content = renderCentered(a.width, contentHeight, GetCompactBanner(MsgLoadingHelp))
			break
		}
		content = lipgloss.NewStyle().
			Width(a.width).
			Height(contentHeight).
			MaxHeight(contentHeight).
			Render(a.helpContent)
	default:
		content = renderCentered(a.width, contentHeight, a.renderTimer())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		content,
		renderSeparator(a.width),
		a.renderStatusBar(),
	)
}

func (a *App) renderTimer() string {
	state := a.engine.State()
	digits := a.engine.Digits()

	clockStyle := ClockPausedStyle
	indicator := "❚❚ paused"
	switch {
	case state.Running && a.engine.Expired():
		clockStyle = ClockDoneStyle
		indicator = "✓ time's up"
	case state.Running:
		clockStyle = ClockStyle
		indicator = "● running"
	}

	clock := renderSmallClock(digits)
	if a.config.UI.BigDigits && (a.width == 0 || a.width >= 50) {
		clock = renderBigClock(digits)
	}

	presets := make([]string, len(a.config.Timer.Presets))
	for i, d := range a.config.Timer.Presets {
		presets[i] = renderButton(fmt.Sprint(i+1), presetLabel(d), false)
	}

	controls := []string{
		renderButton(a.keys.Start.Help().Key, "Start", state.Running),
		renderButton(a.keys.Pause.Help().Key, "Pause", !state.Running && state.Remaining > 0),
		renderButton(a.keys.Reset.Help().Key, "Reset", false),
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("› "+AppName),
		"",
		clockStyle.Render(clock),
		"",
		renderMuted(indicator),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, presets...),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, controls...),
	)
}

func (a *App) renderStatusBar() string {
	line := a.help.View(a.keys)
	switch {
	case a.err != nil:
		line = StatusErrorStyle.Render(fmt.Sprintf("✗ %v", a.err))
	case a.status != "":
		status := a.status
		if a.width > 0 {
			status = truncateEnd(status, a.width/2)
		}
		line = a.statusKind.style().Render(status) + renderMuted(" • ") + line
	}
	style := lipgloss.NewStyle().Padding(0, 1)
	if a.width > 0 {
		style = style.Width(a.width).MaxWidth(a.width)
	}
	return style.Render(line)
}
