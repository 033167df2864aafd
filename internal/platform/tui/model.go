package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-legend/internal/core"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Game is a simulation the model can drive. It holds no Bubble Tea state:
// the model maps input, paces the steps and renders.
type Game interface {
	// ID names the game in logs.
	ID() string

	// Title is shown as the terminal window title.
	Title() string

	// Reset starts a new game. Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the last frame into dst, which is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	help      help.Model
	gameState core.GameState
	hidden    bool
	quitting  bool
	now       func() time.Time
	logger    *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	m := Model{
		game:   game,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(),
		help:   h,
		now:    time.Now,
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// gameHeight is the screen height left after the help bar.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		lines = len(m.keys.Keys().FullHelp()[0])
	}
	return max(m.config.ScreenH-lines, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tea.Batch(tea.SetWindowTitle(m.game.Title()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.hidden = false
		return m, nil

	case tea.BlurMsg:
		m.hidden = true
		m.held.Release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameHeight())
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "target", m.gameState.Target)
		return m, tea.Quit
	}
	m.held.Press(action, m.now())
	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// renderer recenters the canvas.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight())
	return m, nil
}

// handleTick steps the simulation with the keys held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := m.held.Frame(now)
	in.Hidden = m.hidden

	result := m.game.Step(in)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the game state of the last tick.
func (m Model) State() core.GameState { return m.gameState }

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Pause when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
