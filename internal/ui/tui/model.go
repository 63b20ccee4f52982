package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DeployPhase represents one deployment phase for display.
type DeployPhase struct {
	Name   string
	Key    string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for the deployment dashboard.
type Model struct {
	ResourceGroup string
	Location      string

	Phases   []DeployPhase
	Warnings []string
	LastLog  string

	// Bounded-poll progress of the active phase.
	PollPhase   string
	PollCurrent int
	PollTotal   int

	StartTime    time.Time
	SpinnerFrame int

	Width  int
	Height int
	Err    error
	Done   bool
}

// NewDeployModel creates a model for the apply command TUI.
func NewDeployModel(resourceGroup, location string) Model {
	return Model{
		ResourceGroup: resourceGroup,
		Location:      location,
		StartTime:     time.Now(),
		Phases: []DeployPhase{
			{Name: "Resource Group", Key: "resource-group"},
			{Name: "Infrastructure", Key: "infrastructure"},
			{Name: "Cluster Access", Key: "cluster"},
			{Name: "Controller Install", Key: "controller"},
			{Name: "Workload Manifests", Key: "workload"},
			{Name: "Convergence", Key: "convergence"},
			{Name: "Role Assignment", Key: "authorization"},
			{Name: "Annotation", Key: "annotation"},
			{Name: "Summary", Key: "summary"},
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case WarningMsg:
		m.Warnings = append(m.Warnings, fmt.Sprintf("[%s] %s", phaseKey(msg.Phase), msg.Message))

	case ProgressMsg:
		m.PollPhase = phaseKey(msg.Phase)
		m.PollCurrent = msg.Current
		m.PollTotal = msg.Total

	case LogMsg:
		m.LastLog = msg.Line

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// phaseKey strips the "(i/n)" position suffix the pipeline appends to phase
// names in its events.
func phaseKey(name string) string {
	if idx := strings.Index(name, " ("); idx >= 0 {
		return name[:idx]
	}
	return name
}

func (m *Model) updatePhase(msg PhaseMsg) {
	key := phaseKey(msg.Phase)
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Mark previous phases as done
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	if msg.Done {
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	} else {
		m.Phases[idx].Active = true
	}

	if msg.Err != nil {
		m.Phases[idx].Err = msg.Err
	}

	// Leaving a phase resets its poll counter display.
	if m.PollPhase != "" && m.PollPhase != key {
		m.PollPhase = ""
		m.PollCurrent = 0
		m.PollTotal = 0
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
