package ui

import (
	"context"
	"strings"

	"cinemaguess/internal/game"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// snapshotMsg carries the controller state after an async operation.
// Failures are already folded into the snapshot's status message, so
// the model never needs to branch on errors.
type snapshotMsg struct {
	snap game.Snapshot
}

type Model struct {
	ctrl     *game.Controller
	input    textinput.Model
	snap     game.Snapshot
	busy     bool
	quitting bool
	width    int
}

func NewModel(ctrl *game.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "your guess"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	return Model{
		ctrl:  ctrl,
		input: ti,
		snap:  ctrl.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, startCmd(m.ctrl))
}

func startCmd(ctrl *game.Controller) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.Start(context.Background())
		return snapshotMsg{snap: ctrl.Snapshot()}
	}
}

func guessCmd(ctrl *game.Controller, guess string) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.SubmitGuess(context.Background(), guess)
		return snapshotMsg{snap: ctrl.Snapshot()}
	}
}

func newMovieCmd(ctrl *game.Controller) tea.Cmd {
	return func() tea.Msg {
		_ = ctrl.NewMovie(context.Background())
		return snapshotMsg{snap: ctrl.Snapshot()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		m.busy = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+n":
			if m.busy || m.snap.State == game.StateLoading {
				return m, nil
			}
			m.busy = true
			m.input.Reset()
			return m, newMovieCmd(m.ctrl)

		case "enter":
			if m.busy {
				return m, nil
			}
			switch m.snap.State {
			case game.StateLoading:
				// retry after a failed load
				m.busy = true
				return m, startCmd(m.ctrl)
			case game.StateActive:
				guess := strings.TrimSpace(m.input.Value())
				m.input.Reset()
				if guess == "" {
					return m, nil
				}
				m.busy = true
				return m, guessCmd(m.ctrl, guess)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
