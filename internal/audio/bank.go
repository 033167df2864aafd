package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-legend/internal/games/legend"
)

// SampleRate of every synthesized sound.
const SampleRate = beep.SampleRate(22050)

// Bank renders recipes into sample buffers on load and plays handles through
// one mixer. It implements legend.SoundBank.
type Bank struct {
	rate   beep.SampleRate
	mixer  *beep.Mixer
	lock   func()
	unlock func()
	logger *log.Logger
}

// NewBank opens the audio device and starts the mixer on it.
func NewBank(logger *log.Logger) (*Bank, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	b := &Bank{
		rate:   SampleRate,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		logger: logger,
	}
	speaker.Play(b.mixer)
	logger.Info("audio device ready", "rate", int(SampleRate))
	return b, nil
}

// newOfflineBank is a bank without a device; the caller pulls samples from
// the mixer.
func newOfflineBank() *Bank {
	var mu sync.Mutex
	return &Bank{
		rate:   SampleRate,
		mixer:  &beep.Mixer{},
		lock:   mu.Lock,
		unlock: mu.Unlock,
		logger: log.New(io.Discard),
	}
}

// Load renders the recipe of path. Unknown paths get a short blip.
func (b *Bank) Load(path string, loop bool) legend.Sound {
	r, ok := Recipes[path]
	if !ok {
		b.logger.Debug("no recipe for sound", "path", path)
		r = fallback
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: b.rate, NumChannels: 2, Precision: 2})
	buf.Append(r.Streamer(b.rate))
	return &handle{bank: b, src: buf.Streamer(0, buf.Len()), loop: loop}
}

// Close stops every handle and releases the device.
func (b *Bank) Close() {
	b.lock()
	b.mixer.Clear()
	b.unlock()
	speaker.Close()
	b.logger.Debug("audio closed")
}

// handle is one loaded sound. It stays in the mixer while playing or paused
// and leaves it once a one-shot sound runs out.
type handle struct {
	bank   *Bank
	src    beep.StreamSeeker
	loop   bool
	mixed  bool
	paused bool
}

func (h *handle) Stream(samples [][2]float64) (int, bool) {
	if h.paused {
		clear(samples)
		return len(samples), true
	}
	n := 0
	for n < len(samples) {
		m, ok := h.src.Stream(samples[n:])
		n += m
		if ok && m > 0 {
			continue
		}
		if !h.loop || h.src.Len() == 0 {
			if n == 0 {
				h.mixed = false
				return 0, false
			}
			return n, true
		}
		if err := h.src.Seek(0); err != nil {
			h.mixed = false
			return n, n > 0
		}
	}
	return n, true
}

func (h *handle) Err() error { return h.src.Err() }

// Play resumes a paused handle or starts a stopped one from where it was
// rewound to. A finished one-shot starts over.
func (h *handle) Play() {
	h.bank.lock()
	defer h.bank.unlock()

	h.paused = false
	if h.mixed {
		return
	}
	if h.src.Position() >= h.src.Len() {
		_ = h.src.Seek(0)
	}
	h.mixed = true
	h.bank.mixer.Add(h)
}

// Pause keeps the position for the next Play.
func (h *handle) Pause() {
	h.bank.lock()
	defer h.bank.unlock()
	h.paused = true
}

// Rewind moves back to the start without changing whether it plays.
func (h *handle) Rewind() {
	h.bank.lock()
	defer h.bank.unlock()
	_ = h.src.Seek(0)
}
