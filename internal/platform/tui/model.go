package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// Model is the Bubble Tea model driving one game session. It translates
// terminal input into session signals, fires fixed-cadence ticks, and
// renders snapshots; the session itself stays presentation-free.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	gameCfg  config.GameConfig
	runtime  core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a Bubble Tea model with a fresh session.
func NewModel(gameCfg config.GameConfig, runtime core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	return Model{
		session: game.NewSession(gameCfg, runtime.Seed),
		screen:  core.NewScreen(runtime.ScreenW, gameScreenHeight(runtime.ScreenH)),
		gameCfg: gameCfg,
		runtime: runtime,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}
}

// gameScreenHeight leaves the last terminal row for the help footer.
func gameScreenHeight(terminalH int) int {
	return core.Max(terminalH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.session.AdvanceTick()
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey translates key presses into session signals. Paddle movement
// and start/pause/restart are plain mutations the next tick observes.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		snap := m.session.Snapshot()
		m.session.SetPaddleTarget(snap.Paddle.X - m.gameCfg.Gameplay.KeyboardStep)

	case key.Matches(msg, m.keys.Right):
		snap := m.session.Snapshot()
		m.session.SetPaddleTarget(snap.Paddle.X + m.gameCfg.Gameplay.KeyboardStep)

	case key.Matches(msg, m.keys.Launch):
		m.session.SignalStart()

	case key.Matches(msg, m.keys.Pause):
		m.session.SignalPause()

	case key.Matches(msg, m.keys.Restart):
		m.session.SignalRestart()
	}

	return m, nil
}

// handleMouse maps pointer motion to a paddle target, scaling the terminal
// column back to field units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.runtime.ScreenW <= 0 {
		return m, nil
	}

	fieldX := float64(msg.X) / float64(m.runtime.ScreenW) * m.gameCfg.Field.Width
	m.session.SetPaddleTarget(fieldX)
	return m, nil
}

// handleResize adjusts the render buffer. The simulation field is
// untouched; only the scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameScreenHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// View renders the latest snapshot plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given configuration.
func Run(gameCfg config.GameConfig, runtime core.RuntimeConfig) error {
	model := NewModel(gameCfg, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer controls the paddle
	)

	_, err := p.Run()
	return err
}
