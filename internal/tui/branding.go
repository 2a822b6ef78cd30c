package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/tmr/internal/config"
)

const AppName = "tmr"

// ASCII art logo lines for tmr - canonical definition
var LogoLines = []string{
	"▀█▀ █▀▄▀█ █▀█",
	" █  █ ▀ █ █▀▄",
	" ▀  ▀   ▀ ▀ ▀",
}

const CompactLogo = `tmr ›`

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
}

// Palette; overridden from [ui.colors] by ApplyTheme.
var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")
	TextColor      = lipgloss.Color("#EAEAEA")
	MutedColor     = lipgloss.Color("#94A3B8")
	ErrorColor     = lipgloss.Color("#EF4444")
	SuccessColor   = lipgloss.Color("#10B981")
	WarnColor      = lipgloss.Color("#FFE66D")
)

var (
	LogoStyle          lipgloss.Style
	TitleStyle         lipgloss.Style
	ClockStyle         lipgloss.Style
	ClockPausedStyle   lipgloss.Style
	ClockDoneStyle     lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonActiveStyle  lipgloss.Style
	ButtonKeyStyle     lipgloss.Style
	HelpStyle          lipgloss.Style
	SeparatorStyle     lipgloss.Style
	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// ApplyTheme replaces the palette with configured colors. Empty values keep
// the built-in color.
func ApplyTheme(colors config.UIColors) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&PrimaryColor, colors.Primary)
	set(&SecondaryColor, colors.Secondary)
	set(&AccentColor, colors.Accent)
	set(&TextColor, colors.Text)
	set(&MutedColor, colors.Muted)
	set(&ErrorColor, colors.Error)
	set(&SuccessColor, colors.Success)
	buildStyles()
}

func buildStyles() {
	LogoStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	ClockStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	ClockPausedStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	ClockDoneStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Foreground(TextColor).
		Padding(0, 1).
		Margin(0, 1)

	ButtonActiveStyle = ButtonStyle.
		BorderForeground(AccentColor).
		Foreground(AccentColor).
		Bold(true)

	ButtonKeyStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(MutedColor)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessColor)

	StatusWarnStyle = lipgloss.NewStyle().
		Foreground(WarnColor)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorColor).
		Bold(true)
}

// GetCompactBanner stacks the logo over a one-line message. It fills screens
// that have nothing else to show yet.
func GetCompactBanner(message string) string {
	rows := make([]string, 0, len(LogoLines)+2)
	for _, line := range LogoLines {
		rows = append(rows, LogoStyle.Render(line))
	}
	rows = append(rows, "", HelpStyle.Render(message))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)

	tagline := "Countdown Timer"
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tagline = fmt.Sprintf("%s %s", tagline, version)
	}
	lines = append(lines, tagline)

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	borderChars := lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}

	borderStyle := lipgloss.NewStyle().
		Border(borderChars).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	fmt.Println(lipgloss.NewStyle().
		Width(50).
		Align(lipgloss.Center).
		Render(borderStyle.Render(banner)))

	fmt.Println(lipgloss.NewStyle().
		Width(50).
		Align(lipgloss.Center).
		MarginBottom(1).
		Foreground(AccentColor).
		Render("◆ ◇ ◆ ◇ ◆"))
}
