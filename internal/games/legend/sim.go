// Package legend is the simulation core of a top-down tile action game: a
// world of scenes with enemies, a sword-wielding player, projectiles,
// pickups, scene transitions and the title, pause and end screens. It draws
// into a display list of sprite handles and plays sounds through an injected
// sound bank; the terminal front end lives in the platform layer.
package legend

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/observer"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseRun
	PhaseStopped
	PhaseSlideScene
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseRun:
		return "run"
	case PhaseStopped:
		return "stopped"
	case PhaseSlideScene:
		return "slide_scene"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	}
	return "unknown"
}

// Options configures a simulation.
type Options struct {
	Config config.LegendConfig
	World  config.WorldData
	Random core.Random // defaults to a source seeded with 1
	Sounds SoundBank   // defaults to silence
	Logger *log.Logger // defaults to a discarding logger
}

// Sim holds every subsystem of one game. restart rebuilds all of them except
// the configuration, the random source and the loaded sounds.
type Sim struct {
	cfg    config.LegendConfig
	data   config.WorldData
	rng    core.Random
	snd    *sounds
	logger *log.Logger

	dt      float64
	frames  uint64
	display DisplayList

	canvasW, canvasH float64

	state       *observer.State[Phase]
	events      *Events
	world       *World
	view        *Viewport
	player      *Player
	sword       *Sword
	enemies     *EnemyManager
	projectiles *ProjectileManager
	items       *ItemManager
	hud         *Hud
	panes       *Panes

	splash   *SplashScreen
	stopped  *StoppedScreen
	gameOver *GameOverScreen
	win      *WinScreen
}

// NewSim validates the level data and builds a game on the splash screen.
func NewSim(opts Options) (*Sim, error) {
	if err := opts.World.Validate(); err != nil {
		return nil, fmt.Errorf("legend: %w", err)
	}
	s := &Sim{
		cfg:    opts.Config,
		data:   opts.World,
		rng:    opts.Random,
		snd:    newSounds(opts.Sounds),
		logger: opts.Logger,
	}
	if s.rng == nil {
		s.rng = core.NewRandom(1)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.init()
	return s, nil
}

// init builds every subsystem from the configuration.
func (s *Sim) init() {
	s.events = NewEvents(s.cfg.Input.AttackFrames)
	s.world = buildWorld(s.data, s.cfg, s.rng)

	hudH := s.cfg.Viewport.HUDHeight
	spawn := s.world.SpawnScene()
	s.view = NewViewport(s, spawn, 0, hudH)
	s.canvasW = s.view.Width()
	s.canvasH = s.view.Height() + hudH

	x, y := s.world.SpawnPosition()
	s.player = NewPlayer(x, y, s.cfg)
	s.player.TargetScore = s.world.TargetScore()
	s.sword = NewSword(s.cfg.Sword, s.logger)
	s.enemies = NewEnemyManager(spawn)
	s.projectiles = NewProjectileManager()
	s.items = NewItemManager()
	s.hud = NewHud(s.canvasW, hudH)
	s.panes = NewPanes(s.cfg.Screens.PaneSpeed, s.canvasW, s.canvasH)

	s.splash = newSplashScreen(s.cfg.Screens)
	s.stopped = newStoppedScreen(s.cfg.Screens)
	s.gameOver = newGameOverScreen(s.cfg.Screens)
	s.win = newWinScreen(s.cfg.Screens)

	s.state = observer.NewState(PhaseSplash)
}

// restart discards the game in progress and starts a new one directly in
// play, skipping the splash screen.
func (s *Sim) restart() {
	for _, h := range s.snd.cache {
		h.Pause()
		h.Rewind()
	}
	s.init()
	s.state.SetNextState(PhaseRun)
	s.logger.Info("game restarted", "target", s.player.TargetScore)
}

// Frame advances the game by dt nominal frames with the given input.
func (s *Sim) Frame(dt float64, in core.InputFrame) {
	s.dt = dt
	s.frames++
	s.events.Read(in)
	s.display.Reset()

	if in.Has(core.ActionPause) && s.state.IsIn(PhaseRun, PhaseStopped) {
		if s.state.Is(PhaseRun) {
			s.state.SetNextState(PhaseStopped)
		} else {
			s.state.SetNextState(PhaseRun)
		}
	}
	if in.Hidden && s.state.Is(PhaseRun) {
		s.state.SetNextState(PhaseStopped)
	}

	switch s.state.Get() {
	case PhaseSplash:
		s.splash.draw(s)
	case PhaseStopped:
		s.drawGame()
		s.stopped.draw(s)
	case PhaseSlideScene:
		s.slideLoop()
	case PhaseGameOver:
		s.gameOver.draw(s)
	case PhaseWin:
		s.win.draw(s)
	default:
		s.runLoop()
	}

	before := s.state.Get()
	s.state.Update(dt)
	if after := s.state.Get(); after != before {
		s.logger.Debug("phase", "from", before, "to", after, "score", s.player.Score)
	}
}

func (s *Sim) runLoop() {
	if !s.panes.Finished() {
		s.drawGame()
		s.panes.DrawOpen(&s.display, s.dt)
		return
	}

	s.player.listenEvents(s)
	s.sword.listenEvents(s)
	s.enemies.Think(s)

	s.player.collisions(s)
	s.items.Collisions(s)
	s.enemies.Collisions(s)
	s.projectiles.Collisions(s)
	s.sword.collisions(s)

	s.player.move()
	s.enemies.Move()
	s.projectiles.Move(s.dt)

	s.drawGame()

	s.player.updateObservers(s.dt)
	s.enemies.UpdateObservers(s.dt)
	s.projectiles.UpdateObservers(s)
	s.events.NewFrame(s.dt)
}

func (s *Sim) slideLoop() {
	s.view.slide(s)
	s.player.slideMove(s)

	s.view.drawScenes(s)
	s.enemies.Draw(s)
	s.sword.draw(s)
	s.player.draw(s)
	s.projectiles.Draw(s)
	s.hud.draw(s)
}

func (s *Sim) drawGame() {
	s.view.drawScenes(s)
	s.enemies.Draw(s)
	s.sword.draw(s)
	s.items.Draw(s)
	s.projectiles.Draw(s)
	s.player.draw(s)
	s.hud.draw(s)
}

// Phase returns the committed top-level state.
func (s *Sim) Phase() Phase { return s.state.Get() }

// Display returns the operations drawn by the last frame.
func (s *Sim) Display() *DisplayList { return &s.display }

// Canvas returns the canvas size in pixels.
func (s *Sim) Canvas() (float64, float64) { return s.canvasW, s.canvasH }

// Player returns the player.
func (s *Sim) Player() *Player { return s.player }

// World returns the scenes of the game in progress.
func (s *Sim) World() *World { return s.world }

// Viewport returns the viewport.
func (s *Sim) Viewport() *Viewport { return s.view }

// Enemies returns the manager of the current scene's enemies.
func (s *Sim) Enemies() *EnemyManager { return s.enemies }

// Projectiles returns the projectile manager.
func (s *Sim) Projectiles() *ProjectileManager { return s.projectiles }

// Items returns the item manager.
func (s *Sim) Items() *ItemManager { return s.items }

// Sword returns the sword.
func (s *Sim) Sword() *Sword { return s.sword }

// Frames returns the number of frames simulated.
func (s *Sim) Frames() uint64 { return s.frames }

// State summarizes the game for the platform layer.
func (s *Sim) State() core.GameState {
	phase := s.state.Get()
	return core.GameState{
		Score:    s.player.Score,
		Target:   s.player.TargetScore,
		Phase:    phase.String(),
		GameOver: phase == PhaseGameOver || phase == PhaseWin,
		Won:      phase == PhaseWin,
		Paused:   phase == PhaseStopped,
	}
}

func sceneKey(sc *Scene) string {
	return fmt.Sprintf("%d,%d", sc.Col, sc.Row)
}
