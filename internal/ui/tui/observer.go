package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/albctl/albctl/internal/provisioning"
)

// ChannelObserver translates pipeline events into Bubble Tea messages. It
// lets the deployment run unchanged while the TUI renders its progress.
type ChannelObserver struct {
	ch chan<- tea.Msg
}

var _ provisioning.Observer = (*ChannelObserver)(nil)

// NewChannelObserver creates an observer that sends messages on ch.
func NewChannelObserver(ch chan<- tea.Msg) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Printf implements provisioning.Logger.
func (o *ChannelObserver) Printf(format string, v ...interface{}) {
	o.ch <- LogMsg{Line: fmt.Sprintf(format, v...)}
}

// Event implements provisioning.Observer.
func (o *ChannelObserver) Event(event provisioning.Event) {
	switch event.Type {
	case provisioning.EventPhaseStarted:
		o.ch <- PhaseMsg{Phase: event.Phase}
	case provisioning.EventPhaseCompleted:
		o.ch <- PhaseMsg{Phase: event.Phase, Done: true}
	case provisioning.EventWarning:
		o.ch <- WarningMsg{Phase: event.Phase, Message: event.Message}
	case provisioning.EventPhaseFailed:
		// The pipeline error reaches the TUI through the runner; the
		// event alone only updates the activity line.
		o.ch <- LogMsg{Line: fmt.Sprintf("[%s] %s", event.Phase, event.Message)}
	default:
		line := fmt.Sprintf("[%s] %s", event.Phase, event.Message)
		if event.Resource != "" {
			line += " " + event.Resource
		}
		o.ch <- LogMsg{Line: line}
	}
}

// Progress implements provisioning.Observer.
func (o *ChannelObserver) Progress(phase string, current, total int) {
	o.ch <- ProgressMsg{Phase: phase, Current: current, Total: total}
}
