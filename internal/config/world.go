package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidWorld is returned when level data fails validation.
var ErrInvalidWorld = errors.New("invalid world")

// Variants lists the enemy variant names level data may spawn.
var Variants = []string{"octorok", "blue_octorok", "moblin", "blue_moblin", "tektite", "blue_tektite"}

// WorldData is the level authoring data: a grid of scenes built from a brick
// legend, with enemy spawns per scene.
type WorldData struct {
	Cols      int    `yaml:"cols"`
	Rows      int    `yaml:"rows"`
	SceneCols int    `yaml:"scene_cols"`
	SceneRows int    `yaml:"scene_rows"`
	CellSize  int    `yaml:"cell_size"`
	Spawn     Spawn  `yaml:"spawn"`
	Default   string `yaml:"default_brick"` // code of the brick filling unspecified cells
	Wall      string `yaml:"wall_brick"`    // code of the border on world edges

	Bricks map[string]BrickSpec `yaml:"bricks"`
	Scenes []SceneSpec          `yaml:"scenes"`
}

// Spawn is the player's starting scene and cell.
type Spawn struct {
	SceneCol int `yaml:"scene_col"`
	SceneRow int `yaml:"scene_row"`
	CellCol  int `yaml:"cell_col"`
	CellRow  int `yaml:"cell_row"`
}

// BrickSpec describes one brick code of the legend.
type BrickSpec struct {
	Name  string `yaml:"name"`
	Solid bool   `yaml:"solid"`
}

// SceneSpec is one scene of the world.
type SceneSpec struct {
	Col     int         `yaml:"col"`
	Row     int         `yaml:"row"`
	Music   string      `yaml:"music"`
	Tiles   []string    `yaml:"tiles"` // one string per row, one brick code per column
	Enemies []EnemySpec `yaml:"enemies"`
}

// EnemySpec is one enemy spawn. Position is in cells; one direction is picked
// among Directions when the world is built.
type EnemySpec struct {
	Variant    string   `yaml:"variant"`
	Col        float64  `yaml:"col"`
	Row        float64  `yaml:"row"`
	Speed      float64  `yaml:"speed"`
	Directions []string `yaml:"directions"`
}

// Scene returns the scene spec at (col, row).
func (w *WorldData) Scene(col, row int) (SceneSpec, bool) {
	for _, s := range w.Scenes {
		if s.Col == col && s.Row == row {
			return s, true
		}
	}
	return SceneSpec{}, false
}

// Validate checks dimensions, brick codes and spawns. Errors wrap
// ErrInvalidWorld.
func (w *WorldData) Validate() error {
	if w.Cols <= 0 || w.Rows <= 0 || w.SceneCols <= 0 || w.SceneRows <= 0 || w.CellSize <= 0 {
		return fmt.Errorf("%w: non-positive dimensions", ErrInvalidWorld)
	}
	if len(w.Bricks) == 0 {
		return fmt.Errorf("%w: empty brick legend", ErrInvalidWorld)
	}
	for code := range w.Bricks {
		if utf8.RuneCountInString(code) != 1 {
			return fmt.Errorf("%w: brick code %q must be one character", ErrInvalidWorld, code)
		}
	}
	if _, ok := w.Bricks[w.Default]; !ok {
		return fmt.Errorf("%w: unknown default brick %q", ErrInvalidWorld, w.Default)
	}
	if _, ok := w.Bricks[w.Wall]; !ok {
		return fmt.Errorf("%w: unknown wall brick %q", ErrInvalidWorld, w.Wall)
	}

	sp := w.Spawn
	if sp.SceneCol < 0 || sp.SceneCol >= w.Cols || sp.SceneRow < 0 || sp.SceneRow >= w.Rows {
		return fmt.Errorf("%w: spawn scene (%d, %d) outside the world", ErrInvalidWorld, sp.SceneCol, sp.SceneRow)
	}
	if sp.CellCol < 0 || sp.CellCol >= w.SceneCols || sp.CellRow < 0 || sp.CellRow >= w.SceneRows {
		return fmt.Errorf("%w: spawn cell (%d, %d) outside the scene", ErrInvalidWorld, sp.CellCol, sp.CellRow)
	}

	seen := make(map[[2]int]bool)
	for _, s := range w.Scenes {
		if err := w.validateScene(s); err != nil {
			return err
		}
		key := [2]int{s.Col, s.Row}
		if seen[key] {
			return fmt.Errorf("%w: scene (%d, %d) defined twice", ErrInvalidWorld, s.Col, s.Row)
		}
		seen[key] = true
	}
	return nil
}

func (w *WorldData) validateScene(s SceneSpec) error {
	if s.Col < 0 || s.Col >= w.Cols || s.Row < 0 || s.Row >= w.Rows {
		return fmt.Errorf("%w: scene (%d, %d) outside the world", ErrInvalidWorld, s.Col, s.Row)
	}
	if len(s.Tiles) != 0 && len(s.Tiles) != w.SceneRows {
		return fmt.Errorf("%w: scene (%d, %d) has %d rows, expected %d",
			ErrInvalidWorld, s.Col, s.Row, len(s.Tiles), w.SceneRows)
	}
	for r, line := range s.Tiles {
		if n := utf8.RuneCountInString(line); n != w.SceneCols {
			return fmt.Errorf("%w: scene (%d, %d) row %d has %d cells, expected %d",
				ErrInvalidWorld, s.Col, s.Row, r, n, w.SceneCols)
		}
		for _, ch := range line {
			if _, ok := w.Bricks[string(ch)]; !ok {
				return fmt.Errorf("%w: scene (%d, %d) row %d: unknown brick %q",
					ErrInvalidWorld, s.Col, s.Row, r, ch)
			}
		}
	}
	for i, e := range s.Enemies {
		if !knownVariant(e.Variant) {
			return fmt.Errorf("%w: scene (%d, %d) enemy %d: unknown variant %q",
				ErrInvalidWorld, s.Col, s.Row, i, e.Variant)
		}
		if e.Col < 0 || e.Col >= float64(w.SceneCols) || e.Row < 0 || e.Row >= float64(w.SceneRows) {
			return fmt.Errorf("%w: scene (%d, %d) enemy %d outside the scene", ErrInvalidWorld, s.Col, s.Row, i)
		}
		for _, d := range e.Directions {
			if !knownDirection(d) {
				return fmt.Errorf("%w: scene (%d, %d) enemy %d: unknown direction %q",
					ErrInvalidWorld, s.Col, s.Row, i, d)
			}
		}
	}
	return nil
}

func knownVariant(name string) bool {
	for _, v := range Variants {
		if v == name {
			return true
		}
	}
	return false
}

func knownDirection(name string) bool {
	switch name {
	case "up", "right", "down", "left":
		return true
	}
	return false
}
