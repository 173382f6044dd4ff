package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/leap-of-faith/internal/games/leap"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope applies a linear attack and an exponential release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	decay    float64 // Release rate per second
	rate     beep.SampleRate
}

func newEnvelope(s beep.Streamer, d, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(d),
		decay:    decay,
		rate:     rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		var vol float64
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = math.Exp(-e.decay * float64(e.position-e.attack) / float64(e.rate))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero volume is silent since the
// effect works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone.
func note(freq float64, d time.Duration, wave Wave, decay float64, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, decay, rate)
}

// selectNotes are the arpeggio roots of each hero's select jingle.
var selectNotes = map[leap.SoundID]float64{
	leap.SoundSelectMaskDude:  523.25, // C5
	leap.SoundSelectNinjaFrog: 587.33, // D5
	leap.SoundSelectPinkMan:   659.25, // E5
}

// Effect synthesizes a sound effect at the given volume, or returns nil
// for an unknown id.
func Effect(id leap.SoundID, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch id {
	case leap.SoundHeal:
		s = beep.Seq(
			note(659.25, 90*time.Millisecond, WaveSine, 4, rate),
			note(987.77, 160*time.Millisecond, WaveSine, 8, rate),
		)
	case leap.SoundSting:
		s = beep.Mix(
			newVolume(note(110, 180*time.Millisecond, WaveSaw, 10, rate), 0.7),
			newVolume(note(0, 60*time.Millisecond, WaveNoise, 30, rate), 0.3),
		)
	case leap.SoundBreak:
		s = beep.Mix(
			newVolume(note(0, 300*time.Millisecond, WaveNoise, 8, rate), 0.6),
			newVolume(note(80, 300*time.Millisecond, WaveSine, 6, rate), 0.4),
		)
	case leap.SoundSelectMaskDude, leap.SoundSelectNinjaFrog, leap.SoundSelectPinkMan:
		root := selectNotes[id]
		s = beep.Seq(
			note(root, 70*time.Millisecond, WaveSquare, 6, rate),
			note(root*1.25, 70*time.Millisecond, WaveSquare, 6, rate),
			note(root*1.5, 140*time.Millisecond, WaveSquare, 10, rate),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// themeNotes is the background loop, a minor arpeggio walking down the
// shaft. Zero is a rest.
var themeNotes = []float64{
	220.00, 261.63, 329.63, 261.63, // Am
	196.00, 246.94, 293.66, 246.94, // G
	174.61, 220.00, 261.63, 220.00, // F
	164.81, 207.65, 246.94, 0, // E
}

// themeStep is the length of one theme note.
const themeStep = 200 * time.Millisecond

// Theme renders the background music once into a buffer at the given
// volume. The result can be looped with beep.Loop.
func Theme(rate beep.SampleRate, vol float64) beep.StreamSeeker {
	notes := make([]beep.Streamer, 0, len(themeNotes))
	for _, f := range themeNotes {
		if f == 0 {
			notes = append(notes, beep.Silence(rate.N(themeStep)))
			continue
		}
		notes = append(notes, note(f, themeStep, WaveSine, 6, rate))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(newVolume(beep.Seq(notes...), vol))
	return buf.Streamer(0, buf.Len())
}
