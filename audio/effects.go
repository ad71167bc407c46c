package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

const (
	munchDuration = 90 * time.Millisecond
	munchAttack   = 5 * time.Millisecond
	munchRelease  = 40 * time.Millisecond
	munchGap      = 25 * time.Millisecond

	// Munch pitch rises with the points awarded
	munchBaseFreq  = 420.0
	munchFreqPerPt = 18.0

	fanfareNote    = 110 * time.Millisecond
	fanfareFinal   = 380 * time.Millisecond
	fanfareAttack  = 8 * time.Millisecond
	fanfareRelease = 60 * time.Millisecond
)

// C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear volume onto effects.Volume
// math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateMunchSound generates a two-blip chomp pitched by the points awarded
func CreateMunchSound(cfg *AudioConfig, points int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := munchBaseFreq + munchFreqPerPt*float64(points)

	first := tone(freq, munchDuration, munchAttack, munchRelease, WaveTriangle, rate)
	gap := beep.Silence(rate.N(munchGap))
	second := tone(freq*1.5, munchDuration, munchAttack, munchRelease, WaveTriangle, rate)

	vol := cfg.EffectVolumes[SoundMunch] * cfg.MasterVolume
	return newVolume(beep.Seq(first, gap, second), vol)
}

// CreateFanfareSound generates a rising C major arpeggio with a held top note
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, f := range fanfareNotes {
		d := fanfareNote
		if i == len(fanfareNotes)-1 {
			d = fanfareFinal
		}
		notes = append(notes, tone(f, d, fanfareAttack, fanfareRelease, WaveTriangle, rate))
	}

	vol := cfg.EffectVolumes[SoundFanfare] * cfg.MasterVolume
	return newVolume(beep.Seq(notes...), vol)
}
