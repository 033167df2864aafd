package legend

import "github.com/vovakirdan/tui-legend/internal/physics"

// Viewport shows the current scene below the HUD and slides to a neighbor
// scene when the player walks off an edge. (dc, dr) is the slide direction in
// scene coordinates, zero when idle.
type Viewport struct {
	X, Y    float64
	Current *Scene
	Next    *Scene

	dc, dr     int
	slideSpeed float64
	music      Sound
	track      string
	display    *DisplayList
}

// NewViewport shows scene at (x, y) on the canvas.
func NewViewport(s *Sim, scene *Scene, x, y float64) *Viewport {
	return &Viewport{
		X:          x,
		Y:          y,
		Current:    scene,
		slideSpeed: s.cfg.Viewport.SlideSpeed,
		music:      s.snd.music(scene.Music),
		track:      scene.Music,
		display:    &s.display,
	}
}

// Width returns the viewport width in pixels.
func (v *Viewport) Width() float64 { return v.Current.Width() }

// Height returns the viewport height in pixels.
func (v *Viewport) Height() float64 { return v.Current.Height() }

// Sliding reports whether a transition is in progress.
func (v *Viewport) Sliding() bool { return v.Next != nil }

// Track returns the playing music track.
func (v *Viewport) Track() string { return v.track }

// SlideScene starts a transition toward dir. Leaving the world does nothing,
// so the canvas clamp acts as a wall.
func (v *Viewport) SlideScene(s *Sim, dir physics.Direction) {
	if !dir.Valid() || v.Sliding() {
		return
	}
	dx, dy := dir.Unit()
	dc, dr := int(dx), int(dy)

	next, ok := s.world.Scene(v.Current.Col+dc, v.Current.Row+dr)
	if !ok {
		return
	}
	v.dc, v.dr = dc, dr
	v.Next = next
	next.OffsetX = float64(dc) * v.Width()
	next.OffsetY = float64(dr) * v.Height()

	s.player.Body.Stop()
	s.player.Attack.SetNextState(false)
	s.state.SetNextState(PhaseSlideScene)
	s.logger.Debug("scene slide", "from", sceneKey(v.Current), "to", sceneKey(next))
}

// slide moves both scenes toward the exit and completes the transition once
// the incoming scene reaches the origin.
func (v *Viewport) slide(s *Sim) {
	if !v.Sliding() {
		s.state.SetNextState(PhaseRun)
		return
	}
	step := v.slideSpeed * s.dt
	ox, oy := -float64(v.dc)*step, -float64(v.dr)*step
	v.Current.OffsetX += ox
	v.Current.OffsetY += oy
	v.Next.OffsetX += ox
	v.Next.OffsetY += oy

	n := v.Next
	arrived := (v.dc == 1 && n.OffsetX <= 0) || (v.dc == -1 && n.OffsetX >= 0) ||
		(v.dr == 1 && n.OffsetY <= 0) || (v.dr == -1 && n.OffsetY >= 0)
	if arrived {
		v.finishSlide(s)
	}
}

func (v *Viewport) finishSlide(s *Sim) {
	old, next := v.Current, v.Next
	old.OffsetX, old.OffsetY = 0, 0
	next.OffsetX, next.OffsetY = 0, 0
	v.dc, v.dr = 0, 0

	if next.Music != v.track {
		v.music.Pause()
		v.music.Rewind()
		v.music = s.snd.music(next.Music)
		v.track = next.Music
		v.music.Play()
	}

	s.enemies.PurgeKilled(s)
	v.Current, v.Next = next, nil
	s.enemies = NewEnemyManager(next)
	s.projectiles.RemoveAll(s)
	s.items.RemoveAll()

	// Purging the last enemy of the old scene may have won the game.
	if s.state.Next() == PhaseSlideScene {
		s.state.SetNextState(PhaseRun)
	}
}

// drawScenes paints the tiles of the current and incoming scenes. Scene
// music starts on the first frame of play.
func (v *Viewport) drawScenes(s *Sim) {
	if s.state.Is(PhaseRun) && s.state.IsFirstFrame {
		v.music.Play()
	}
	v.drawTiles(v.Current)
	if v.Next != nil {
		v.drawTiles(v.Next)
	}
}

func (v *Viewport) drawTiles(scene *Scene) {
	for c := 0; c < scene.Cols(); c++ {
		for r := 0; r < scene.Rows(); r++ {
			cell, _ := scene.Cell(c, r)
			v.DrawInScene(scene, cell.Brick.Sprite(), cell.Box)
		}
	}
}

// Draw paints a sprite at viewport coordinates.
func (v *Viewport) Draw(sprite Sprite, b physics.Box) {
	v.display.Sprite(sprite, b.X+v.X, b.Y+v.Y, b.W, b.H)
}

// DrawInScene paints a sprite at scene coordinates, following the scene's
// slide offset.
func (v *Viewport) DrawInScene(scene *Scene, sprite Sprite, b physics.Box) {
	v.display.Sprite(sprite, b.X+scene.OffsetX+v.X, b.Y+scene.OffsetY+v.Y, b.W, b.H)
}
