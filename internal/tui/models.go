package tui

type View int

const (
	ViewTimer View = iota
	ViewHelp
)
