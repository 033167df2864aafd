package legend

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

func TestBuildDefaultWorld(t *testing.T) {
	w, err := BuildWorld(config.DefaultWorld(), config.DefaultLegendConfig(), core.NewRandom(1))
	if err != nil {
		t.Fatalf("BuildWorld() error = %v", err)
	}

	if w.Cols != 3 || w.Rows != 3 {
		t.Errorf("world is %dx%d, expected 3x3", w.Cols, w.Rows)
	}
	if got := w.TargetScore(); got != 8 {
		t.Errorf("TargetScore() = %d, expected 8", got)
	}

	spawn := w.SpawnScene()
	if spawn.Col != 1 || spawn.Row != 2 {
		t.Errorf("SpawnScene() = (%d, %d), expected (1, 2)", spawn.Col, spawn.Row)
	}
	if x, y := w.SpawnPosition(); x != 448 || y != 384 {
		t.Errorf("SpawnPosition() = (%v, %v), expected (448, 384)", x, y)
	}
	if spawn.Width() != 1024 || spawn.Height() != 704 {
		t.Errorf("scene is %vx%v, expected 1024x704", spawn.Width(), spawn.Height())
	}

	mountain, _ := w.Scene(0, 0)
	if mountain.Music != "death_mountain" {
		t.Errorf("Music = %q, expected death_mountain", mountain.Music)
	}
	if spawn.Music != DefaultMusic {
		t.Errorf("Music = %q, expected %q", spawn.Music, DefaultMusic)
	}
}

func TestTilesOverrideEdgeWalls(t *testing.T) {
	data := openWorld(1, 1)
	tiles := make([]string, 11)
	for r := range tiles {
		tiles[r] = "################"
	}
	tiles[5] = "................"
	data.Scenes = []config.SceneSpec{{Col: 0, Row: 0, Tiles: tiles}}

	w, err := BuildWorld(data, config.DefaultLegendConfig(), core.NewRandom(1))
	if err != nil {
		t.Fatalf("BuildWorld() error = %v", err)
	}
	sc, _ := w.Scene(0, 0)
	if b, _ := sc.BrickAt(0, 5); b.Solid {
		t.Error("BrickAt(0, 5) should follow the tiles over the edge wall")
	}
	if b, _ := sc.BrickAt(3, 4); !b.Solid {
		t.Error("BrickAt(3, 4) should be a wall")
	}

	def, _ := BuildWorld(config.DefaultWorld(), config.DefaultLegendConfig(), core.NewRandom(1))
	stairs, _ := def.Scene(0, 1)
	if b, _ := stairs.BrickAt(9, 0); b.Name != "stairs" || b.Solid {
		t.Errorf("BrickAt(9, 0) = %+v, expected walkable stairs", b)
	}
}

func TestEdgeWallsOnOpenWorld(t *testing.T) {
	w := buildWorld(openWorld(2, 1), config.DefaultLegendConfig(), core.NewRandom(1))
	left, _ := w.Scene(0, 0)

	tests := []struct {
		col, row int
		solid    bool
	}{
		{0, 5, true},
		{15, 5, false},
		{7, 0, true},
		{7, 10, true},
		{7, 5, false},
	}
	for _, tt := range tests {
		b, ok := left.BrickAt(tt.col, tt.row)
		if !ok {
			t.Fatalf("BrickAt(%d, %d) outside the scene", tt.col, tt.row)
		}
		if b.Solid != tt.solid {
			t.Errorf("BrickAt(%d, %d).Solid = %v, expected %v", tt.col, tt.row, b.Solid, tt.solid)
		}
	}

	if _, ok := left.BrickAt(16, 0); ok {
		t.Error("BrickAt(16, 0) should be outside the scene")
	}
	if n := len(left.Solids()); n != 16+16+9 {
		t.Errorf("len(Solids()) = %d, expected 41", n)
	}
}

func TestSpawnEnemyDirections(t *testing.T) {
	data := openWorld(1, 1)
	data.Scenes = []config.SceneSpec{{
		Col: 0, Row: 0,
		Enemies: []config.EnemySpec{
			{Variant: "moblin", Col: 2, Row: 3, Speed: 3, Directions: []string{"left", "right"}},
			{Variant: "octorok", Col: 4, Row: 4, Speed: 3},
		},
	}}

	w := buildWorld(data, config.DefaultLegendConfig(), &core.Sequence{Values: []int{1}})
	sc, _ := w.Scene(0, 0)
	if len(sc.Enemies) != 2 {
		t.Fatalf("%d enemies, expected 2", len(sc.Enemies))
	}

	m := sc.Enemies[0]
	if m.Variant != Moblin || m.Body.Direction != physics.Right {
		t.Errorf("enemy 0 = %v facing %v, expected moblin facing right", m.Variant, m.Body.Direction)
	}
	if m.Body.X != 128 || m.Body.Y != 192 {
		t.Errorf("enemy 0 at (%v, %v), expected (128, 192)", m.Body.X, m.Body.Y)
	}
	if sc.Enemies[1].Body.Direction != physics.Down {
		t.Errorf("enemy 1 faces %v, expected the default down", sc.Enemies[1].Body.Direction)
	}
}

func TestBuildWorldRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.WorldData)
	}{
		{"no scenes", func(w *config.WorldData) { w.Cols = 0 }},
		{"unknown default", func(w *config.WorldData) { w.Default = "?" }},
		{"spawn outside", func(w *config.WorldData) { w.Spawn.CellRow = 11 }},
		{"short row", func(w *config.WorldData) {
			w.Scenes = []config.SceneSpec{{Tiles: []string{"...."}}}
		}},
		{"unknown variant", func(w *config.WorldData) {
			w.Scenes = []config.SceneSpec{{Enemies: []config.EnemySpec{{Variant: "dodongo"}}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := openWorld(1, 1)
			tt.mutate(&data)
			_, err := BuildWorld(data, config.DefaultLegendConfig(), core.NewRandom(1))
			if !errors.Is(err, config.ErrInvalidWorld) {
				t.Errorf("BuildWorld() error = %v, expected ErrInvalidWorld", err)
			}
		})
	}
}

func TestSceneSlide(t *testing.T) {
	data := openWorld(3, 3)
	data.Spawn = config.Spawn{SceneCol: 1, SceneRow: 1, CellCol: 15, CellRow: 5}
	data.Scenes = []config.SceneSpec{
		{Col: 2, Row: 1, Music: "dungeon", Enemies: []config.EnemySpec{{Variant: "octorok", Col: 8, Row: 8, Speed: 3}}},
		{Col: 1, Row: 1, Enemies: []config.EnemySpec{{Variant: "octorok", Col: 2, Row: 2, Speed: 3}}},
		{Col: 0, Row: 0, Enemies: []config.EnemySpec{{Variant: "octorok", Col: 2, Row: 2, Speed: 3}}},
	}
	bank := newRecordingBank()
	s := newTestSim(t, data, core.NewRandom(7), bank)
	enterRun(s)

	from := s.view.Current
	stale := from.Enemies[0]
	stale.State.SetNextState(EnemyKilled)
	stale.State.Update(1)
	s.projectiles.Add(enemyShot(100, 100, physics.Down))

	frame(s, core.ActionRight)
	if s.Phase() != PhaseSlideScene {
		t.Fatalf("Phase() = %v, expected slide_scene", s.Phase())
	}
	next := s.view.Next
	if next == nil || next.Col != 2 || next.Row != 1 {
		t.Fatalf("Next = %v, expected scene (2, 1)", next)
	}
	if next.OffsetX != s.view.Width() {
		t.Errorf("next OffsetX = %v, expected %v", next.OffsetX, s.view.Width())
	}

	for i := 0; i < 200 && s.Phase() == PhaseSlideScene; i++ {
		if next.OffsetX < 0 {
			t.Fatalf("next OffsetX = %v went past the origin", next.OffsetX)
		}
		frame(s)
	}

	if s.Phase() != PhaseRun {
		t.Fatalf("Phase() = %v, expected run after the slide", s.Phase())
	}
	if s.view.Current != next || s.view.Next != nil {
		t.Error("scenes not swapped")
	}
	if next.OffsetX != 0 || from.OffsetX != 0 {
		t.Errorf("offsets (%v, %v), expected both at 0", from.OffsetX, next.OffsetX)
	}
	if s.player.Body.X != 0 {
		t.Errorf("player X = %v, expected the left edge of the new scene", s.player.Body.X)
	}
	if from.HasEnemies() {
		t.Error("killed enemies of the old scene should be purged")
	}
	if s.player.Score != 1 {
		t.Errorf("Score = %d, expected the purge to clear the old scene", s.player.Score)
	}
	if s.projectiles.Len() != 0 || s.items.Len() != 0 {
		t.Error("projectiles and items should not survive the slide")
	}
	if s.view.Track() != "dungeon" || bank.count("play", MusicPath("dungeon")) == 0 {
		t.Errorf("Track() = %q, expected the dungeon music to start", s.view.Track())
	}
	if bank.count("pause", MusicPath(DefaultMusic)) == 0 {
		t.Error("the old track should pause")
	}
	if s.enemies.Len() != 1 {
		t.Errorf("%d enemies managed, expected the new scene's one", s.enemies.Len())
	}
}

func TestCorridorNudgeAtEdgeDoesNotSlide(t *testing.T) {
	tiles := make([]string, 11)
	for r := range tiles {
		tiles[r] = "................"
	}
	tiles[4] = ".#.............."

	data := openWorld(3, 3)
	data.Spawn = config.Spawn{SceneCol: 1, SceneRow: 1, CellCol: 7, CellRow: 5}
	data.Scenes = []config.SceneSpec{{Col: 1, Row: 1, Tiles: tiles}}
	s := newTestSim(t, data, core.NewRandom(1), nil)
	enterRun(s)

	p := s.player
	p.Body.X, p.Body.Y = 2, 288

	frames(s, 2, core.ActionUp)
	if s.Phase() != PhaseRun {
		t.Fatalf("Phase() = %v halfway down the left edge, expected run", s.Phase())
	}
	if p.Body.X != 0 {
		t.Errorf("X = %v, expected the nudge to stop at the left edge", p.Body.X)
	}

	for i := 0; i < 100 && s.Phase() == PhaseRun; i++ {
		frame(s, core.ActionUp)
	}
	next := s.view.Next
	if next == nil || next.Col != 1 || next.Row != 0 {
		t.Fatalf("Next = %v, expected scene (1, 0)", next)
	}
	if p.Body.Y > 5 {
		t.Errorf("Y = %v when sliding, expected the top edge", p.Body.Y)
	}
}

func TestSlideFollowsCrossedEdge(t *testing.T) {
	data := openWorld(3, 3)
	data.Spawn = config.Spawn{SceneCol: 1, SceneRow: 1, CellCol: 0, CellRow: 5}
	s := newTestSim(t, data, core.NewRandom(1), nil)
	enterRun(s)

	p := s.player
	p.Body.X = 3
	p.Body.Direction = physics.Up
	p.Body.DX = -5
	p.collisions(s)

	next := s.view.Next
	if next == nil || next.Col != 0 || next.Row != 1 {
		t.Fatalf("Next = %v, expected the left neighbor (0, 1)", next)
	}
}

func TestSceneSlideKeepsSameMusic(t *testing.T) {
	data := openWorld(2, 1)
	data.Spawn.CellCol = 15
	bank := newRecordingBank()
	s := newTestSim(t, data, nil, bank)
	enterRun(s)
	frame(s)

	frame(s, core.ActionRight)
	for i := 0; i < 200 && s.Phase() == PhaseSlideScene; i++ {
		frame(s)
	}

	if s.view.Current.Col != 1 {
		t.Fatalf("Current = (%d, %d), expected (1, 0)", s.view.Current.Col, s.view.Current.Row)
	}
	if bank.count("pause", MusicPath(DefaultMusic)) != 0 {
		t.Error("the track should keep playing between scenes that share it")
	}
}

func TestWorldEdgeBlocksSlide(t *testing.T) {
	data := openWorld(1, 1)
	data.Bricks["#"] = config.BrickSpec{Name: "wall"}
	data.Spawn.CellCol = 15
	s := newTestSim(t, data, nil, nil)
	enterRun(s)

	frame(s, core.ActionRight)
	if s.Phase() != PhaseRun {
		t.Errorf("Phase() = %v, leaving the world must act as a wall", s.Phase())
	}
	if s.player.Body.Right() != s.view.Width() {
		t.Errorf("Right() = %v, expected the viewport edge", s.player.Body.Right())
	}
}

func TestMinimapColors(t *testing.T) {
	data := openWorld(2, 1)
	data.Scenes = []config.SceneSpec{{Col: 1, Row: 0, Enemies: []config.EnemySpec{{Variant: "octorok", Col: 2, Row: 2, Speed: 3}}}}
	s := newTestSim(t, data, nil, nil)
	enterRun(s)

	s.display.Reset()
	s.hud.drawMap(s)

	var red, green int
	var first physics.Box
	for _, op := range s.display.Ops {
		if op.Kind != OpFill {
			continue
		}
		switch op.Color {
		case core.ColorRed:
			red++
		case core.ColorGreen:
			if green == 0 {
				first = op.Box
			}
			green++
		}
	}
	if red != 1 || green != 1 {
		t.Errorf("red=%d green=%d, expected one of each", red, green)
	}

	cellH := (64.0 - 1 - 1) / 1
	cellW := cellH * 1024 / 704
	x0 := 1024.0/2 - (cellW*2+2-1)/2
	if first.H != cellH || first.W != cellW || first.X != x0 {
		t.Errorf("scene (0, 0) at %+v, expected x=%v w=%v h=%v", first, x0, cellW, cellH)
	}
}
