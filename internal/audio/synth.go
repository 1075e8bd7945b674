package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.dur, n.wave, rate)
	return NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/2, rate)
}

// cueNotes lists the notes each cue plays in sequence.
var cueNotes = map[Cue][]note{
	CueJump: {
		{freq: 523.25, dur: 40 * time.Millisecond, wave: WaveSquare},
		{freq: 783.99, dur: 50 * time.Millisecond, wave: WaveSquare},
	},
	CueScore: {
		{freq: 987.77, dur: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1318.51, dur: 140 * time.Millisecond, wave: WaveSquare},
	},
	CueGameOver: {
		{freq: 392.00, dur: 160 * time.Millisecond, wave: WaveSaw},
		{freq: 329.63, dur: 160 * time.Millisecond, wave: WaveSaw},
		{freq: 261.63, dur: 320 * time.Millisecond, wave: WaveSaw},
	},
	CuePowerUp: {
		{freq: 523.25, dur: 70 * time.Millisecond, wave: WaveSine},
		{freq: 659.25, dur: 70 * time.Millisecond, wave: WaveSine},
		{freq: 783.99, dur: 70 * time.Millisecond, wave: WaveSine},
		{freq: 1046.50, dur: 140 * time.Millisecond, wave: WaveSine},
	},
	CueBossHit: {
		{freq: 0, dur: 90 * time.Millisecond, wave: WaveNoise},
	},
}

// Synthesize builds the streamer for a cue at the given volume (0..1).
// It returns nil for an unknown cue.
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return newVolume(beep.Seq(parts...), volume)
}
