package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorWaves verifies every wave shape stays within [-1, 1]
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Fatalf("wave %d: n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("wave %d: channels differ at %d", wave, i)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expected*2)
	n, _ := osc.Stream(samples)
	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}

	n2, ok2 := osc.Stream(samples[:10])
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n2, ok2)
	}
}

// TestEnvelopeShape verifies the ramp up and the fade to silence
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 50*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("n=%d ok=%v", n, ok)
	}

	if math.Abs(samples[0][0]) >= math.Abs(samples[rate.N(40*time.Millisecond)][0]) {
		t.Error("attack should ramp up")
	}
	if last := math.Abs(samples[n-1][0]); last > 0.01 {
		t.Errorf("release should end near silence, got %f", last)
	}
}

// TestMunchSound verifies the chomp is finite and audible
func TestMunchSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	total, peak := drain(CreateMunchSound(cfg, 17))

	rate := beep.SampleRate(cfg.SampleRate)
	want := 2*rate.N(munchDuration) + rate.N(munchGap)
	if total != want {
		t.Errorf("munch length = %d samples, want %d", total, want)
	}
	if peak <= 0 || peak > 1 {
		t.Errorf("munch peak = %f, want (0, 1]", peak)
	}
}

func TestFanfareSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	total, peak := drain(CreateFanfareSound(cfg))

	rate := beep.SampleRate(cfg.SampleRate)
	want := 3*rate.N(fanfareNote) + rate.N(fanfareFinal)
	if total != want {
		t.Errorf("fanfare length = %d samples, want %d", total, want)
	}
	if peak <= 0 {
		t.Error("fanfare should be audible")
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	if _, peak := drain(CreateMunchSound(cfg, 15)); peak != 0 {
		t.Errorf("muted munch peak = %f, want 0", peak)
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := &AudioConfig{MasterVolume: 3, EffectVolumes: [soundTypeCount]float64{-1, 0.4}}
	cfg.Normalize()
	if cfg.MasterVolume != 1 {
		t.Errorf("master = %v, want 1", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundMunch] != 0 || cfg.EffectVolumes[SoundFanfare] != 0.4 {
		t.Errorf("effect volumes = %v", cfg.EffectVolumes)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("sample rate = %d, want 48000", cfg.SampleRate)
	}
}
