package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate            = beep.SampleRate(48000)
	speakerBufferDuration = 100 * time.Millisecond
	boomDuration          = 250 * time.Millisecond
	boomStartFrequencyHz  = 180.0
	boomEndFrequencyHz    = 45.0
	boomAmplitude         = 0.6
	boopDuration          = 80 * time.Millisecond
	boopFrequencyHz       = 880.0
	boopAmplitude         = 0.3
	boopAttack            = 5 * time.Millisecond
)

// BoomGenerator generates a decaying low thump with a falling pitch
type BoomGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewBoomGenerator creates a boom generator
func NewBoomGenerator(sr beep.SampleRate) *BoomGenerator {
	return &BoomGenerator{
		sr:      sr,
		samples: sr.N(boomDuration),
	}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := boomStartFrequencyHz + (boomEndFrequencyHz-boomStartFrequencyHz)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		env := (1 - progress) * (1 - progress)
		sample := boomAmplitude * env * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error {
	return nil
}

// envelope applies a linear attack and release to a finite streamer
type envelope struct {
	streamer beep.Streamer
	attack   int
	total    int
	pos      int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else if e.total > e.attack {
			vol = float64(e.total-e.pos) / float64(e.total-e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newBoop creates a short sine blip
func newBoop(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, boopFrequencyHz)
	if err != nil {
		return nil, err
	}
	total := sr.N(boopDuration)
	return &envelope{
		streamer: newVolume(beep.Take(total, sine), boopAmplitude),
		attack:   sr.N(boopAttack),
		total:    total,
	}, nil
}

// newStreamer builds a fresh one-shot streamer for a named sound
func newStreamer(name string) (beep.Streamer, bool) {
	switch name {
	case SoundBoom:
		return NewBoomGenerator(sampleRate), true
	case SoundBoop:
		s, err := newBoop(sampleRate)
		if err != nil {
			return nil, false
		}
		return s, true
	}
	return nil, false
}

// newVolume wraps s with a linear volume
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
