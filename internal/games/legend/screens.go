package legend

import (
	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/observer"
)

// Panes are the two black curtains that open on play and close on the end
// screens.
type Panes struct {
	speed    float64
	position float64
	w, h     float64
}

// NewPanes creates closed panes covering a w×h canvas.
func NewPanes(speed, w, h float64) *Panes {
	return &Panes{speed: speed, w: w, h: h}
}

// Finished reports whether the current animation is over.
func (p *Panes) Finished() bool { return p.position > p.w/2 }

// Reset restarts the animation.
func (p *Panes) Reset() { p.position = 0 }

// DrawOpen draws both halves moving outward.
func (p *Panes) DrawOpen(d *DisplayList, dt float64) {
	d.Fill(-p.position, 0, p.w/2, p.h, core.ColorBlack)
	d.Fill(p.w/2+p.position, 0, p.w/2, p.h, core.ColorBlack)
	p.position += p.speed * dt
}

// DrawClose draws both halves moving inward.
func (p *Panes) DrawClose(d *DisplayList, dt float64) {
	d.Fill(-p.w/2+p.position, 0, p.w/2, p.h, core.ColorBlack)
	d.Fill(p.w-p.position, 0, p.w/2, p.h, core.ColorBlack)
	p.position += p.speed * dt
}

// stage is the step of a multi-part screen.
type stage int

const (
	stagePose  stage = iota // the frozen game with the player's final pose
	stageHide               // the panes close over the game
	stageBlack              // title and message on black
)

// banner is the shared title card: a title at one third of the canvas and a
// blinking message at two thirds once showAfter frames have passed.
type banner struct {
	title, message string
	showAfter      float64
	translucent    bool
	blink          *observer.Animation
}

func newBanner(title, message string, showAfter, blink float64) *banner {
	return &banner{title: title, message: message, showAfter: showAfter, blink: observer.NewAnimation(blink, 2)}
}

func (b *banner) draw(s *Sim, frame float64) {
	if b.translucent {
		s.display.Shade(0, 0, s.canvasW, s.canvasH)
	} else {
		s.display.Fill(0, 0, s.canvasW, s.canvasH, core.ColorBlack)
	}
	s.display.Text(b.title, s.canvasW/2, s.canvasH/3, core.ColorWhite, AlignCenter)
	if frame > b.showAfter {
		if b.blink.Is(1) {
			s.display.Text(b.message, s.canvasW/2, s.canvasH/3*2, core.ColorWhite, AlignCenter)
		}
		b.blink.Update(s.dt)
	}
}

// SplashScreen waits for Enter over the intro music.
type SplashScreen struct {
	banner *banner
	state  *observer.State[stage]
}

func newSplashScreen(cfg config.ScreensConfig) *SplashScreen {
	return &SplashScreen{
		banner: newBanner("TLOZ-JS GAME", "press enter to start", cfg.MessageAfter, cfg.MessageBlink),
		state:  observer.NewState(stageBlack),
	}
}

func (sc *SplashScreen) draw(s *Sim) {
	music := s.snd.music(MusicIntro)
	if sc.state.IsFirstFrame {
		music.Play()
	}
	sc.banner.draw(s, sc.state.CurrentFrame)
	if sc.state.CurrentFrame > sc.banner.showAfter && s.events.Enter {
		music.Pause()
		s.state.SetNextState(PhaseRun)
	}
	sc.state.Update(s.dt)
}

// StoppedScreen is the pause card drawn over the frozen game.
type StoppedScreen struct {
	banner *banner
	state  *observer.State[stage]
}

func newStoppedScreen(cfg config.ScreensConfig) *StoppedScreen {
	b := newBanner("PAUSE", "press p to continue", 0, cfg.MessageBlink)
	b.translucent = true
	return &StoppedScreen{banner: b, state: observer.NewState(stageBlack)}
}

func (sc *StoppedScreen) draw(s *Sim) {
	sc.banner.draw(s, sc.state.CurrentFrame)
	sc.state.Update(s.dt)
}

// GameOverScreen plays the death spin, closes the panes and offers a retry.
type GameOverScreen struct {
	banner *banner
	state  *observer.State[stage]
	died   float64
}

func newGameOverScreen(cfg config.ScreensConfig) *GameOverScreen {
	return &GameOverScreen{
		banner: newBanner("GAME OVER", "press enter to retry", cfg.MessageAfter, cfg.MessageBlink),
		state:  observer.NewState(stagePose),
		died:   cfg.DiedFrames,
	}
}

func (sc *GameOverScreen) draw(s *Sim) {
	switch sc.state.Get() {
	case stagePose:
		s.view.drawScenes(s)
		s.enemies.Draw(s)
		s.hud.draw(s)
		s.player.drawGameOver(s)
		if s.player.Died.CurrentFrame > sc.died {
			sc.state.SetNextState(stageHide)
		}
	case stageHide:
		if sc.state.IsFirstFrame {
			s.panes.Reset()
		}
		s.view.drawScenes(s)
		s.hud.draw(s)
		s.panes.DrawClose(&s.display, s.dt)
		if s.panes.Finished() {
			sc.state.SetNextState(stageBlack)
		}
	case stageBlack:
		music := s.snd.music(MusicGameOver)
		if sc.state.IsFirstFrame {
			music.Play()
		}
		sc.banner.draw(s, sc.state.CurrentFrame)
		if s.events.Enter {
			music.Pause()
			s.restart()
			return
		}
	}
	sc.state.Update(s.dt)
}

// WinScreen holds the victory pose, closes the panes and offers a new game.
type WinScreen struct {
	banner *banner
	state  *observer.State[stage]
	pose   float64
}

func newWinScreen(cfg config.ScreensConfig) *WinScreen {
	return &WinScreen{
		banner: newBanner("YOU WON", "press enter to play again", cfg.MessageAfter, cfg.MessageBlink),
		state:  observer.NewState(stagePose),
		pose:   cfg.WinPoseFrames,
	}
}

func (sc *WinScreen) drawPose(s *Sim) {
	s.view.drawScenes(s)
	s.enemies.Draw(s)
	s.sword.drawWin(s)
	s.player.drawWin(s)
	s.hud.draw(s)
}

func (sc *WinScreen) draw(s *Sim) {
	switch sc.state.Get() {
	case stagePose:
		sc.drawPose(s)
		if sc.state.CurrentFrame > sc.pose {
			sc.state.SetNextState(stageHide)
		}
	case stageHide:
		if sc.state.IsFirstFrame {
			s.panes.Reset()
		}
		sc.drawPose(s)
		s.panes.DrawClose(&s.display, s.dt)
		if s.panes.Finished() {
			sc.state.SetNextState(stageBlack)
		}
	case stageBlack:
		music := s.snd.music(MusicEnding)
		if sc.state.IsFirstFrame {
			music.Play()
		}
		sc.banner.draw(s, sc.state.CurrentFrame)
		if s.events.Enter {
			music.Pause()
			s.restart()
			return
		}
	}
	sc.state.Update(s.dt)
}
