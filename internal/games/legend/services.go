package legend

import "strings"

// Sprite is an opaque drawable handle. The simulation only passes it to the
// display list; the renderer decides what it looks like.
type Sprite string

// Sound is a playable audio handle. Looping is fixed when the handle is loaded.
type Sound interface {
	Play()
	Pause()
	Rewind()
}

// SoundBank loads audio handles by asset path.
type SoundBank interface {
	Load(path string, loop bool) Sound
}

// Asset paths of every sound the simulation plays.
const (
	SoundEnemyDie   = "sounds/effect/Enemy_Die.wav"
	SoundEnemyHit   = "sounds/effect/Enemy_Hit.wav"
	SoundFanfare    = "sounds/effect/Fanfare.wav"
	SoundGetHeart   = "sounds/effect/Get_Heart.wav"
	SoundGetItem    = "sounds/effect/Get_Item.wav"
	SoundLinkDie    = "sounds/effect/Link_Die.wav"
	SoundLinkHurt   = "sounds/effect/Link_Hurt.wav"
	SoundLowHealth  = "sounds/effect/Low_Health.wav"
	SoundShield     = "sounds/effect/Shield.wav"
	SoundSwordShoot = "sounds/effect/Sword_Shoot.wav"
	SoundSwordSlash = "sounds/effect/Sword_Slash.wav"
)

// Music tracks played outside of scenes.
const (
	MusicIntro    = "intro"
	MusicGameOver = "game_over"
	MusicEnding   = "ending"
)

const musicDir = "sounds/music/"

// MusicPath returns the asset path of a music track.
func MusicPath(track string) string {
	return musicDir + track + ".mp3"
}

// EffectPaths lists every one-shot and looping effect path.
var EffectPaths = []string{
	SoundEnemyDie, SoundEnemyHit, SoundFanfare, SoundGetHeart, SoundGetItem,
	SoundLinkDie, SoundLinkHurt, SoundLowHealth, SoundShield, SoundSwordShoot, SoundSwordSlash,
}

// Silent is a SoundBank for running without a device.
type Silent struct{}

// Load returns a handle that does nothing.
func (Silent) Load(string, bool) Sound { return silence{} }

type silence struct{}

func (silence) Play()   {}
func (silence) Pause()  {}
func (silence) Rewind() {}

// sounds caches handles so every caller shares one handle per path, the way
// a pausable track must be shared between whoever starts and stops it.
type sounds struct {
	bank  SoundBank
	cache map[string]Sound
}

func newSounds(bank SoundBank) *sounds {
	if bank == nil {
		bank = Silent{}
	}
	return &sounds{bank: bank, cache: make(map[string]Sound)}
}

func (s *sounds) get(path string) Sound {
	if h, ok := s.cache[path]; ok {
		return h
	}
	h := s.bank.Load(path, loops(path))
	if h == nil {
		h = silence{}
	}
	s.cache[path] = h
	return h
}

func (s *sounds) play(path string) { s.get(path).Play() }

func (s *sounds) music(track string) Sound { return s.get(MusicPath(track)) }

// loops reports whether a path is loaded as a looping handle: every music
// track and the low-health alarm.
func loops(path string) bool {
	return path == SoundLowHealth || strings.HasPrefix(path, musicDir)
}
