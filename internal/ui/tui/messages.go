// Package tui provides a Bubble Tea-based terminal UI for the deployment.
package tui

// PhaseMsg reports progress of a deployment phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// WarningMsg carries a non-fatal degradation surfaced by a phase.
type WarningMsg struct {
	Phase   string
	Message string
}

// ProgressMsg reports bounded-poll progress within a phase.
type ProgressMsg struct {
	Phase   string
	Current int
	Total   int
}

// LogMsg carries the most recent activity line.
type LogMsg struct {
	Line string
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{}
