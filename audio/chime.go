// Package audio synthesizes the nudge chime. Audio is strictly optional:
// a failed speaker init disables the engine without affecting the avatar.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeToneA   = 660.0 // Hz
	chimeToneB   = 880.0
	chimeToneLen = 120 * time.Millisecond
	chimeAttack  = 10 * time.Millisecond
	chimeRelease = 60 * time.Millisecond
	chimeVolume  = 0.4
)

// Engine owns the speaker and plays the nudge chime
type Engine struct {
	ready bool
}

// NewEngine initializes the speaker. The returned error is informational;
// the engine is safe to use either way and stays silent when not ready
func NewEngine() (*Engine, error) {
	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	return &Engine{ready: err == nil}, err
}

// Ready reports whether the speaker initialized
func (e *Engine) Ready() bool {
	return e != nil && e.ready
}

// PlayNudge plays a rising two-tone chime. No-op when the engine is silent
func (e *Engine) PlayNudge() {
	if !e.Ready() {
		return
	}
	speaker.Play(beep.Seq(
		chimeTone(chimeToneA),
		chimeTone(chimeToneB),
	))
}

// Close releases the speaker
func (e *Engine) Close() {
	if e.Ready() {
		speaker.Close()
		e.ready = false
	}
}

// chimeTone builds one enveloped sine burst at the given frequency
func chimeTone(freq float64) beep.Streamer {
	osc := &sineOsc{freq: freq, limit: sampleRate.N(chimeToneLen)}
	env := &envelope{
		streamer: osc,
		attack:   sampleRate.N(chimeAttack),
		release:  sampleRate.N(chimeRelease),
		total:    sampleRate.N(chimeToneLen),
	}
	return &effects.Volume{Streamer: env, Base: 2, Volume: math.Log2(chimeVolume)}
}

// sineOsc generates a fixed-length sine wave
type sineOsc struct {
	freq     float64
	phase    float64
	position int
	limit    int
}

func (o *sineOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.limit {
			return i, false
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sineOsc) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if rel := e.total - e.position; rel < e.release && e.release > 0 {
			vol = float64(rel) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
