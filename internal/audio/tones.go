package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// toneGenerator is a finite sine tone with a short linear fade in and out.
type toneGenerator struct {
	freq     float64
	volume   float64
	pos      int
	duration int
	fade     int
}

func newTone(freq float64, duration time.Duration, volume float64) *toneGenerator {
	samples := sampleRate.N(duration)
	return &toneGenerator{
		freq:     freq,
		volume:   volume,
		duration: samples,
		fade:     min(sampleRate.N(5*time.Millisecond), samples/2),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}

		t := float64(g.pos) / float64(sampleRate)
		sample := g.volume * g.envelope() * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

func (g *toneGenerator) envelope() float64 {
	if g.fade == 0 {
		return 1
	}
	if g.pos < g.fade {
		return float64(g.pos) / float64(g.fade)
	}
	if left := g.duration - g.pos; left < g.fade {
		return float64(left) / float64(g.fade)
	}
	return 1
}

// buzzGenerator is a low square-ish buzz for rejected clicks.
type buzzGenerator struct {
	freq     float64
	pos      int
	duration int
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}

		t := float64(g.pos) / float64(sampleRate)

		// fundamental plus odd harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		envelope := math.Exp(-t * 12)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}

// moveTone - a short blip, higher for X than for O.
func moveTone(high bool) beep.Streamer {
	freq := 523.25
	if high {
		freq = 659.25
	}
	return newTone(freq, 90*time.Millisecond, 0.25)
}

// winJingle - a rising C major arpeggio.
func winJingle() beep.Streamer {
	return beep.Seq(
		newTone(523.25, 110*time.Millisecond, 0.25),
		newTone(659.25, 110*time.Millisecond, 0.25),
		newTone(783.99, 110*time.Millisecond, 0.25),
		newTone(1046.50, 260*time.Millisecond, 0.25),
	)
}

// drawJingle - two flat notes.
func drawJingle() beep.Streamer {
	return beep.Seq(
		newTone(440, 160*time.Millisecond, 0.2),
		newTone(440, 160*time.Millisecond, 0.2),
	)
}

func rejectBuzz() beep.Streamer {
	return &buzzGenerator{
		freq:     110,
		duration: sampleRate.N(150 * time.Millisecond),
	}
}
