package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted reports that the user quit the TUI before the deployment
// finished. The caller should cancel the deployment context on seeing it.
var ErrInterrupted = errors.New("deployment interrupted")

// RunDeployTUI wraps a deployment run with a Bubble Tea TUI. deployFn runs
// the pipeline, sending progress messages on the channel (usually through a
// ChannelObserver); its error, if any, ends the TUI and is returned.
func RunDeployTUI(resourceGroup, location string, deployFn func(ch chan<- tea.Msg) error) error {
	m := NewDeployModel(resourceGroup, location)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run the deployment in a background goroutine and pump its messages
	// into the program.
	go func() {
		ch := make(chan tea.Msg, 16)
		errCh := make(chan error, 1)
		go func() {
			defer close(ch)
			errCh <- deployFn(ch)
		}()

		for msg := range ch {
			p.Send(msg)
		}

		if err := <-errCh; err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	if !fm.Done {
		return ErrInterrupted
	}
	return nil
}
