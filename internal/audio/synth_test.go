package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/games/legend"
)

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = (%d, %v), expected (100, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1 && v != 1 {
			t.Errorf("sample %d = %f, expected -1 or 1", i, v)
		}
	}
}

func TestOscillatorShapesInRange(t *testing.T) {
	for _, w := range []Wave{WaveTriangle, WaveNoise} {
		osc := NewOscillator(330, 50*time.Millisecond, w, SampleRate)
		samples := make([][2]float64, 500)
		n, _ := osc.Stream(samples)
		for i := 0; i < n; i++ {
			if v := samples[i][0]; v < -1 || v > 1 {
				t.Errorf("wave %d sample %d = %f out of range", w, i, v)
			}
		}
	}
}

func TestOscillatorRest(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, SampleRate)
	samples := make([][2]float64, 50)
	osc.Stream(samples)
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, SampleRate)
	samples := make([][2]float64, 1000)

	n, ok := osc.Stream(samples)
	if want := SampleRate.N(10 * time.Millisecond); n != want || !ok {
		t.Errorf("Stream() = (%d, %v), expected (%d, true)", n, ok, want)
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Stream() after the end = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(440, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	total := SampleRate.N(d)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("streamed %d samples, expected %d", n, total)
	}

	if v := samples[0][0]; v != 0 {
		t.Errorf("first sample = %f, expected the attack to start silent", v)
	}
	if v := math.Abs(samples[total/2][0]); v != 1 {
		t.Errorf("middle sample = %f, expected full volume", v)
	}
	if v := math.Abs(samples[total-1][0]); v > 0.01 {
		t.Errorf("last sample = %f, expected the release to fade out", v)
	}
}

func TestRecipeStreamer(t *testing.T) {
	r := Recipe{Wave: WaveSquare, Beat: 20 * time.Millisecond, Gain: 0.5, Notes: notes(1, a4, rest, a4)}
	if r.Duration() != 60*time.Millisecond {
		t.Errorf("Duration() = %v, expected 60ms", r.Duration())
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(r.Streamer(SampleRate))
	if want := 3 * SampleRate.N(20*time.Millisecond); buf.Len() != want {
		t.Errorf("Len() = %d, expected %d", buf.Len(), want)
	}
}

func TestPitch(t *testing.T) {
	tests := []struct {
		semitones int
		want      float64
	}{
		{0, 440},
		{12, 880},
		{-12, 220},
	}
	for _, tt := range tests {
		if got := Pitch(tt.semitones); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Pitch(%d) = %f, expected %f", tt.semitones, got, tt.want)
		}
	}
}

func TestRecipesCoverGame(t *testing.T) {
	paths := append([]string{}, legend.EffectPaths...)
	for _, track := range []string{legend.MusicIntro, legend.MusicGameOver, legend.MusicEnding, legend.DefaultMusic} {
		paths = append(paths, legend.MusicPath(track))
	}
	w := config.DefaultWorld()
	for _, sc := range w.Scenes {
		if sc.Music != "" {
			paths = append(paths, legend.MusicPath(sc.Music))
		}
	}

	for _, p := range paths {
		r, ok := Recipes[p]
		if !ok {
			t.Errorf("no recipe for %s", p)
			continue
		}
		if r.Duration() <= 0 {
			t.Errorf("%s: Duration() = %v, expected a positive length", p, r.Duration())
		}
	}
}
