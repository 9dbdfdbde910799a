package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/game"
	"github.com/vovakirdan/termtris/internal/storage"
)

// Model is the Bubble Tea model driving one game session. It owns the
// driver loop: ticks advance the simulation by a fixed time slice and key
// presses dispatch edge-triggered actions to the manager.
type Model struct {
	mgr      *game.Manager
	recorder *storage.Recorder
	keys     *KeyMapper
	screen   *core.Screen
	config   core.RuntimeConfig
	dtMillis int
	quitting bool
}

// NewModel creates a model for the given manager. The recorder may be nil
// when telemetry storage is unavailable.
func NewModel(mgr *game.Manager, recorder *storage.Recorder, keys *KeyMapper, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	return Model{
		mgr:      mgr,
		recorder: recorder,
		keys:     keys,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		dtMillis: 1000 / cfg.TickRate,
	}
}

// Init starts the tick loop. The manager begins in the menu status and
// waits for a start action.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		//nolint:errcheck // Invalid-state errors retain the last snapshot
		m.mgr.Tick(m.dtMillis)
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey maps a key press to an action and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if action == core.ActionQuit {
		if m.recorder != nil {
			m.recorder.FlushQuit(m.mgr.State())
		}
		m.quitting = true
		return m, tea.Quit
	}

	//nolint:errcheck // Rejected moves are silent; invalid-state errors retain the last snapshot
	m.mgr.HandleAction(action)
	return m, nil
}

// View renders the current snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.mgr.State())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(mgr *game.Manager, recorder *storage.Recorder, keys *KeyMapper, cfg core.RuntimeConfig) error {
	model := NewModel(mgr, recorder, keys, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
