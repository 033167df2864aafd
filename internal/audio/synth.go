// Package audio synthesizes the game's chiptune effects and music with beep
// and plays them through one shared mixer.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples. A zero
// frequency is a rest.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a tone of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq == 0:
			val = 0
		case o.wave == WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case o.wave == WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case o.wave == WaveNoise:
			// xorshift keeps the noise identical between runs
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s, which lasts duration, with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	if att+rel > total {
		att, rel = total/2, total-total/2
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; zero or less is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Note is one step of a recipe: a frequency in Hz, 0 for a rest, held for a
// number of beats.
type Note struct {
	Freq  float64
	Beats float64
}

// Recipe describes a synthesized sound.
type Recipe struct {
	Wave  Wave
	Beat  time.Duration
	Gain  float64
	Notes []Note
}

const (
	noteAttack  = 4 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

// Streamer renders the recipe as one note after another.
func (r Recipe) Streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(r.Notes))
	for _, n := range r.Notes {
		d := time.Duration(n.Beats * float64(r.Beat))
		osc := NewOscillator(n.Freq, d, r.Wave, rate)
		parts = append(parts, NewEnvelope(osc, d, noteAttack, noteRelease, rate))
	}
	return newVolume(beep.Seq(parts...), r.Gain)
}

// Duration returns the total length of the recipe.
func (r Recipe) Duration() time.Duration {
	var beats float64
	for _, n := range r.Notes {
		beats += n.Beats
	}
	return time.Duration(beats * float64(r.Beat))
}

// Pitch returns the frequency of the note semitones away from A4.
func Pitch(semitones int) float64 {
	return 440 * math.Pow(2, float64(semitones)/12)
}
