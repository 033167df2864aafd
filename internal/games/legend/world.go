package legend

import (
	"fmt"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// DefaultMusic is the track of scenes the level data does not describe.
const DefaultMusic = "overworld"

// Brick is one tile kind.
type Brick struct {
	Name  string
	Solid bool
}

// Sprite returns the tile sprite.
func (b Brick) Sprite() Sprite { return Sprite(b.Name) }

// Cell is one tile of a scene in scene-local pixels.
type Cell struct {
	physics.Box
	Brick Brick
}

// Scene is one screen of the world. Enemies is the live list of the scene's
// enemies; kills persist when the player leaves and comes back.
type Scene struct {
	Col, Row int
	Music    string
	Enemies  []*Enemy

	// OffsetX and OffsetY shift the scene while it slides in or out.
	OffsetX, OffsetY float64

	cols, rows int
	cellSize   float64
	cells      [][]Cell // [col][row]
	solids     []physics.Box
}

func newScene(col, row, cols, rows int, cellSize float64, fill Brick) *Scene {
	s := &Scene{Col: col, Row: row, Music: DefaultMusic, cols: cols, rows: rows, cellSize: cellSize}
	s.cells = make([][]Cell, cols)
	for c := range s.cells {
		s.cells[c] = make([]Cell, rows)
		for r := range s.cells[c] {
			s.cells[c][r] = Cell{
				Box:   physics.NewBox(float64(c)*cellSize, float64(r)*cellSize, cellSize, cellSize),
				Brick: fill,
			}
		}
	}
	return s
}

// Cols returns the number of tile columns.
func (s *Scene) Cols() int { return s.cols }

// Rows returns the number of tile rows.
func (s *Scene) Rows() int { return s.rows }

// CellSize returns the tile size in pixels.
func (s *Scene) CellSize() float64 { return s.cellSize }

// Width returns the scene width in pixels.
func (s *Scene) Width() float64 { return float64(s.cols) * s.cellSize }

// Height returns the scene height in pixels.
func (s *Scene) Height() float64 { return float64(s.rows) * s.cellSize }

// Cell returns the tile at (col, row).
func (s *Scene) Cell(col, row int) (Cell, bool) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return Cell{}, false
	}
	return s.cells[col][row], true
}

// BrickAt returns the brick at (col, row).
func (s *Scene) BrickAt(col, row int) (Brick, bool) {
	c, ok := s.Cell(col, row)
	return c.Brick, ok
}

// Solids returns the boxes of every collidable tile, column by column.
func (s *Scene) Solids() []physics.Box {
	if s.solids == nil {
		s.solids = make([]physics.Box, 0)
		for c := range s.cells {
			for _, cell := range s.cells[c] {
				if cell.Brick.Solid {
					s.solids = append(s.solids, cell.Box)
				}
			}
		}
	}
	return s.solids
}

// HasEnemies reports whether any enemy of the scene is still listed.
func (s *Scene) HasEnemies() bool { return len(s.Enemies) > 0 }

// Variants counts the scene's enemies per variant.
func (s *Scene) Variants() map[Variant]int {
	out := make(map[Variant]int, len(s.Enemies))
	for _, e := range s.Enemies {
		out[e.Variant]++
	}
	return out
}

func (s *Scene) setBrick(col, row int, b Brick) {
	s.cells[col][row].Brick = b
	s.solids = nil
}

// World is the grid of scenes.
type World struct {
	Cols, Rows int

	spawnCol, spawnRow int
	spawnX, spawnY     float64
	scenes             [][]*Scene // [col][row]
}

// BuildWorld validates the level data and builds every scene with its
// enemies. Spawn directions are drawn from rng scene by scene, column-major.
func BuildWorld(data config.WorldData, cfg config.LegendConfig, rng core.Random) (*World, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("legend: %w", err)
	}
	return buildWorld(data, cfg, rng), nil
}

// buildWorld expects validated data.
func buildWorld(data config.WorldData, cfg config.LegendConfig, rng core.Random) *World {
	bricks := make(map[rune]Brick, len(data.Bricks))
	for code, spec := range data.Bricks {
		for _, r := range code {
			bricks[r] = Brick{Name: spec.Name, Solid: spec.Solid}
		}
	}
	fill := bricks[firstRune(data.Default)]
	wall := bricks[firstRune(data.Wall)]
	size := float64(data.CellSize)

	w := &World{
		Cols:     data.Cols,
		Rows:     data.Rows,
		spawnCol: data.Spawn.SceneCol,
		spawnRow: data.Spawn.SceneRow,
		spawnX:   float64(data.Spawn.CellCol) * size,
		spawnY:   float64(data.Spawn.CellRow) * size,
	}
	w.scenes = make([][]*Scene, data.Cols)
	for c := range w.scenes {
		w.scenes[c] = make([]*Scene, data.Rows)
		for r := range w.scenes[c] {
			s := newScene(c, r, data.SceneCols, data.SceneRows, size, fill)
			w.edgeWalls(s, wall)

			if spec, ok := data.Scene(c, r); ok {
				if spec.Music != "" {
					s.Music = spec.Music
				}
				for row, line := range spec.Tiles {
					col := 0
					for _, ch := range line {
						s.setBrick(col, row, bricks[ch])
						col++
					}
				}
				for _, es := range spec.Enemies {
					s.Enemies = append(s.Enemies, spawnEnemy(es, size, cfg, rng))
				}
			}
			w.scenes[c][r] = s
		}
	}
	return w
}

// edgeWalls closes the outer border of scenes on the world's edge.
func (w *World) edgeWalls(s *Scene, wall Brick) {
	if s.Col == 0 {
		for r := 0; r < s.rows; r++ {
			s.setBrick(0, r, wall)
		}
	}
	if s.Col == w.Cols-1 {
		for r := 0; r < s.rows; r++ {
			s.setBrick(s.cols-1, r, wall)
		}
	}
	if s.Row == 0 {
		for c := 0; c < s.cols; c++ {
			s.setBrick(c, 0, wall)
		}
	}
	if s.Row == w.Rows-1 {
		for c := 0; c < s.cols; c++ {
			s.setBrick(c, s.rows-1, wall)
		}
	}
}

func spawnEnemy(es config.EnemySpec, size float64, cfg config.LegendConfig, rng core.Random) *Enemy {
	v, _ := ParseVariant(es.Variant)
	dir := physics.Down
	if len(es.Directions) > 0 {
		candidates := make([]physics.Direction, 0, len(es.Directions))
		for _, name := range es.Directions {
			if d, ok := physics.ParseDirection(name); ok {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) > 0 {
			dir = physics.RandomDirection(rng, candidates...)
		}
	}
	return NewEnemy(v, es.Col*size, es.Row*size, es.Speed, dir, cfg)
}

// Scene returns the scene at (col, row).
func (w *World) Scene(col, row int) (*Scene, bool) {
	if col < 0 || col >= w.Cols || row < 0 || row >= w.Rows {
		return nil, false
	}
	return w.scenes[col][row], true
}

// SpawnScene returns the scene the player starts in.
func (w *World) SpawnScene() *Scene {
	return w.scenes[w.spawnCol][w.spawnRow]
}

// SpawnPosition returns the player's starting position in scene pixels.
func (w *World) SpawnPosition() (float64, float64) {
	return w.spawnX, w.spawnY
}

// Scenes returns every scene column by column.
func (w *World) Scenes() []*Scene {
	out := make([]*Scene, 0, w.Cols*w.Rows)
	for c := range w.scenes {
		out = append(out, w.scenes[c]...)
	}
	return out
}

// TargetScore is the number of scenes that start with enemies.
func (w *World) TargetScore() int {
	n := 0
	for _, s := range w.Scenes() {
		if s.HasEnemies() {
			n++
		}
	}
	return n
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
