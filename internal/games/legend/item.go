package legend

import (
	"slices"

	"github.com/vovakirdan/tui-legend/internal/physics"
)

// Item is a pickup lying in the current scene.
type Item struct {
	Box    physics.Box
	Sprite Sprite
	Sound  string
	Effect ItemEffect
}

// ItemManager owns the items of the current scene.
type ItemManager struct {
	list []*Item
}

// NewItemManager creates an empty manager.
func NewItemManager() *ItemManager {
	return &ItemManager{}
}

// Add drops an item.
func (m *ItemManager) Add(it *Item) {
	m.list = append(m.list, it)
}

// All returns a snapshot of the items.
func (m *ItemManager) All() []*Item {
	return slices.Clone(m.list)
}

// Len returns the number of items.
func (m *ItemManager) Len() int { return len(m.list) }

// Remove deletes it; removing an absent item does nothing.
func (m *ItemManager) Remove(it *Item) bool {
	i := slices.Index(m.list, it)
	if i < 0 {
		return false
	}
	m.list = slices.Delete(m.list, i, i+1)
	return true
}

// RemoveAll deletes every item.
func (m *ItemManager) RemoveAll() {
	m.list = nil
}

// Collisions picks up every item the player touches or slashes.
func (m *ItemManager) Collisions(s *Sim) {
	var sword physics.Box
	attacking := s.player.Attack.Is(true)
	if attacking {
		sword = s.sword.Bounds(s.player)
	}
	for _, it := range m.All() {
		if physics.Overlaps(s.player.Body.Box, it.Box) || (attacking && physics.Overlaps(sword, it.Box)) {
			s.applyItem(it.Effect)
			s.snd.play(it.Sound)
			m.Remove(it)
		}
	}
}

// Draw paints the items over the current scene.
func (m *ItemManager) Draw(s *Sim) {
	for _, it := range m.list {
		s.view.DrawInScene(s.view.Current, it.Sprite, it.Box)
	}
}
