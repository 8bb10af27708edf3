// Package sound plays the sine of the current angle as a tone and keeps a
// short history of what was played for the oscilloscope trace.
package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tone is a beep.Streamer producing a sine wave whose pitch follows
// sin θ: base·2^(sin θ), one octave either side of base. Every streamed
// sample is recorded into a ring buffer.
type Tone struct {
	rate   beep.SampleRate
	base   float64
	volume float64

	mu        sync.RWMutex
	freq      float64
	phase     float64
	buffer    [][2]float64
	nextIndex int
}

// NewTone returns a tone at base Hz for a sample rate, remembering the
// last ringSize samples.
func NewTone(rate beep.SampleRate, base, volume float64, ringSize int) *Tone {
	return &Tone{
		rate:   rate,
		base:   base,
		volume: volume,
		freq:   base,
		buffer: make([][2]float64, ringSize),
	}
}

// Frequency returns the pitch for angle theta.
func Frequency(base, theta float64) float64 {
	return base * math.Exp2(math.Sin(theta))
}

// SetAngle retunes the tone to theta. Phase is kept so the wave stays
// continuous.
func (t *Tone) SetAngle(theta float64) {
	f := Frequency(t.base, theta)
	t.mu.Lock()
	t.freq = f
	t.mu.Unlock()
}

// Stream implements beep.Streamer. It never runs dry.
func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	step := 2 * math.Pi * t.freq / float64(t.rate)
	for i := range samples {
		v := t.volume * math.Sin(t.phase)
		samples[i] = [2]float64{v, v}
		t.phase = math.Mod(t.phase+step, 2*math.Pi)

		t.buffer[t.nextIndex] = samples[i]
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Tone) Err() error { return nil }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tone) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
