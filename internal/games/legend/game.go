package legend

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
)

// ID names the game in logs.
const ID = "legend"

// Settings stored by the CLI before the game is created.
var (
	configPath       string
	worldPath        string
	difficultyPreset config.DifficultyPreset
	soundBank        SoundBank
	logger           *log.Logger
	fixedStep        bool
)

// SetConfigPath sets the custom tuning file.
func SetConfigPath(path string) {
	configPath = path
}

// SetWorldPath sets the custom level data file.
func SetWorldPath(path string) {
	worldPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetSoundBank sets where sounds are loaded from. nil plays nothing.
func SetSoundBank(bank SoundBank) {
	soundBank = bank
}

// SetLogger sets the logger of new games. nil discards.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetFixedStep makes every Step advance exactly one frame regardless of wall
// time, for reproducible runs.
func SetFixedStep(fixed bool) {
	fixedStep = fixed
}

// Game adapts the simulation to the terminal platform: Reset loads the
// settings staged by the CLI, Step paces frames with the clock.
type Game struct {
	sim    *Sim
	clock  *Clock
	cfg    config.LegendConfig
	logger *log.Logger
	err    error
}

// New creates an unstarted game; Reset builds the simulation.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "TLOZ-JS" }

// Reset loads the configuration and level data and starts a new game on the
// splash screen. Unreadable files fall back to the embedded defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.logger = logger
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	cfg, source, err := config.LoadLegend(configPath)
	if err != nil {
		g.logger.Warn("falling back to default tuning", "source", source, "err", err)
		cfg = config.DefaultLegendConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLegendPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	world, source, err := config.LoadWorld(worldPath)
	if err != nil {
		g.logger.Warn("falling back to default world", "source", source, "err", err)
		world = config.DefaultWorld()
	}

	g.sim, g.err = NewSim(Options{
		Config: cfg,
		World:  world,
		Random: core.NewRandom(runtime.Seed),
		Sounds: soundBank,
		Logger: g.logger,
	})
	if g.err != nil {
		g.logger.Error("cannot build world", "err", g.err)
	}

	var now func() time.Time
	if fixedStep {
		now = g.fixedNow()
	}
	g.clock = NewClock(cfg.Timing.FPS, cfg.Timing.MaxFrameDelta, now)
	g.logger.Info("game reset", "difficulty", cfg.Difficulty.Preset, "seed", runtime.Seed)
}

// fixedNow returns a clock source that advances one frame per reading.
func (g *Game) fixedNow() func() time.Time {
	fps := g.cfg.Timing.FPS
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(frame)
		return t
	}
}

// Step advances the simulation by the wall time elapsed since the last step.
// Time spent hidden is not counted: the first step after it is one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: core.GameState{GameOver: true}}
	}
	g.sim.Frame(g.clock.Tick(), in)
	if in.Hidden {
		g.clock.Reset()
	}
	return core.StepResult{State: g.sim.State()}
}

// Render draws the last frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		msg := "no world loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorRed)
		return
	}
	w, h := g.sim.Canvas()
	RenderDisplay(g.sim.Display(), w, h, dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{GameOver: true}
	}
	return g.sim.State()
}

// Sim exposes the running simulation to inspectors.
func (g *Game) Sim() *Sim { return g.sim }

// Err returns the error of the last Reset, if the world could not be built.
func (g *Game) Err() error { return g.err }
