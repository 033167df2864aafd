package legend

import "math"

// Snapshot is a flat summary of the simulation for determinism testing and
// debug dumps. Positions are stored in hundredths of a pixel.
type Snapshot struct {
	Frame uint64
	Phase string

	SceneCol, SceneRow int

	PlayerX, PlayerY int
	PlayerDir        int
	HP               int
	Score            int
	Invincible       bool

	// Enemies of the current scene, 5 ints each: Variant, X, Y, State, HP
	EnemyCount int
	EnemyData  []int

	// Projectiles, 4 ints each: X, Y, Direction, State
	ProjectileCount int
	ProjectileData  []int

	ItemCount int

	// Enemies left per scene in column-major order
	Remaining []int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot captures the current state.
func (s *Sim) Snapshot() Snapshot {
	p := s.player

	enemies := s.enemies.All()
	enemyData := make([]int, 0, len(enemies)*5)
	for _, e := range enemies {
		enemyData = append(enemyData, int(e.Variant), fixed(e.Body.X), fixed(e.Body.Y), int(e.State.Get()), e.HP)
	}

	projectiles := s.projectiles.All()
	projectileData := make([]int, 0, len(projectiles)*4)
	for _, pr := range projectiles {
		projectileData = append(projectileData, fixed(pr.Body.X), fixed(pr.Body.Y), int(pr.Body.Direction), int(pr.State.Get()))
	}

	scenes := s.world.Scenes()
	remaining := make([]int, len(scenes))
	for i, sc := range scenes {
		remaining[i] = len(sc.Enemies)
	}

	return Snapshot{
		Frame: s.frames,
		Phase: s.state.Get().String(),

		SceneCol: s.view.Current.Col,
		SceneRow: s.view.Current.Row,

		PlayerX:    fixed(p.Body.X),
		PlayerY:    fixed(p.Body.Y),
		PlayerDir:  int(p.Body.Direction),
		HP:         p.HP,
		Score:      p.Score,
		Invincible: p.Invincible.Is(true),

		EnemyCount:      len(enemies),
		EnemyData:       enemyData,
		ProjectileCount: len(projectiles),
		ProjectileData:  projectileData,
		ItemCount:       s.items.Len(),
		Remaining:       remaining,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.SceneCol)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SceneRow)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerDir)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HP)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemCount)  //#nosec G115 -- hash computation
	if snap.Invincible {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Remaining {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
