package tui

type ApplicationState int

const (
	StateBrowse ApplicationState = iota
	StateDetail
	StateError
)
