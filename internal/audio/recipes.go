package audio

import (
	"time"

	"github.com/vovakirdan/tui-legend/internal/games/legend"
)

// rest marks a silent step in notes.
const rest = -100

// Semitones from A4.
const (
	c4  = -9
	d4  = -7
	e4  = -5
	f4  = -4
	g4  = -2
	a4  = 0
	bb4 = 1
	b4  = 2
	c5  = 3
	d5  = 5
	e5  = 7
	f5  = 8
	g5  = 10
	a5  = 12
	c6  = 15
	e6  = 19
)

// notes builds a run of notes of equal length.
func notes(beats float64, semitones ...int) []Note {
	out := make([]Note, len(semitones))
	for i, s := range semitones {
		out[i] = Note{Beats: beats}
		if s != rest {
			out[i].Freq = Pitch(s)
		}
	}
	return out
}

func join(parts ...[]Note) []Note {
	var out []Note
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Recipes maps every asset path the game plays to its synthesized sound.
var Recipes = map[string]Recipe{
	legend.SoundEnemyDie:   {Wave: WaveSquare, Beat: 30 * time.Millisecond, Gain: 0.25, Notes: notes(1, g5, d5, a4, e4)},
	legend.SoundEnemyHit:   {Wave: WaveSquare, Beat: 35 * time.Millisecond, Gain: 0.25, Notes: notes(1, c5, g4)},
	legend.SoundGetHeart:   {Wave: WaveSquare, Beat: 50 * time.Millisecond, Gain: 0.25, Notes: notes(1, e5, g5)},
	legend.SoundGetItem:    {Wave: WaveSquare, Beat: 60 * time.Millisecond, Gain: 0.25, Notes: notes(1, c5, e5, g5, c6)},
	legend.SoundLinkHurt:   {Wave: WaveNoise, Beat: 40 * time.Millisecond, Gain: 0.3, Notes: notes(3, a4)},
	legend.SoundLowHealth:  {Wave: WaveSquare, Beat: 70 * time.Millisecond, Gain: 0.15, Notes: notes(1, a5, rest, rest, rest)},
	legend.SoundShield:     {Wave: WaveSquare, Beat: 40 * time.Millisecond, Gain: 0.2, Notes: notes(1, c6, e6)},
	legend.SoundSwordShoot: {Wave: WaveSquare, Beat: 25 * time.Millisecond, Gain: 0.2, Notes: notes(1, c5, e5, g5, c6, e6)},
	legend.SoundSwordSlash: {Wave: WaveNoise, Beat: 50 * time.Millisecond, Gain: 0.25, Notes: notes(2, a4)},
	legend.SoundFanfare: {Wave: WaveSquare, Beat: 120 * time.Millisecond, Gain: 0.25,
		Notes: join(notes(1, a4, bb4, b4), notes(4, c5))},
	legend.SoundLinkDie: {Wave: WaveTriangle, Beat: 90 * time.Millisecond, Gain: 0.4,
		Notes: join(notes(1, c5, b4, bb4, a4, g4, f4, e4), notes(3, c4))},

	legend.MusicPath(legend.MusicIntro): {Wave: WaveTriangle, Beat: 180 * time.Millisecond, Gain: 0.3,
		Notes: join(notes(2, a4, rest), notes(1, e4, a4, b4, c5, d5, e5), notes(4, rest))},
	legend.MusicPath(legend.DefaultMusic): {Wave: WaveTriangle, Beat: 150 * time.Millisecond, Gain: 0.3,
		Notes: join(notes(2, bb4, f4), notes(1, bb4, c5, d5, e5), notes(3, f5), notes(1, rest, f5, f5, g5, a5), notes(4, rest))},
	legend.MusicPath("death_mountain"): {Wave: WaveSquare, Beat: 160 * time.Millisecond, Gain: 0.12,
		Notes: join(notes(1, d4, f4, a4, d5, c5, a4, f4, e4), notes(2, d4, rest))},
	legend.MusicPath(legend.MusicGameOver): {Wave: WaveTriangle, Beat: 240 * time.Millisecond, Gain: 0.3,
		Notes: join(notes(1, e5, d5, c5, b4, a4), notes(3, e4), notes(4, rest))},
	legend.MusicPath(legend.MusicEnding): {Wave: WaveTriangle, Beat: 200 * time.Millisecond, Gain: 0.3,
		Notes: join(notes(1, c5, e5, g5), notes(3, c6), notes(1, a5, f5, g5), notes(3, e5), notes(4, rest))},
}

// fallback plays for paths without a recipe.
var fallback = Recipe{Wave: WaveSquare, Beat: 30 * time.Millisecond, Gain: 0.1, Notes: notes(1, a4)}
