package systems

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/goldenmunch/attract/components"
)

func TestParticleDecayLifetime(t *testing.T) {
	st := newTestState(t, 1)
	st.Particles = []components.Particle{{X: 100, Y: 100, VX: 3, VY: -2, Life: 60, MaxLife: 60}}
	sys := NewParticleSystem()
	decay := st.Tuning.Particles.Decay

	for i := 0; i < 60; i++ {
		if len(st.Particles) != 1 {
			t.Fatalf("update %d: particle removed early", i)
		}
		before := st.Particles[0]
		sys.Update(st)
		if i == 59 {
			break
		}

		after := st.Particles[0]
		if after.Life != 60-i-1 {
			t.Fatalf("update %d: life = %d, want %d", i, after.Life, 60-i-1)
		}
		if math.Abs(after.X-(before.X+before.VX)) > 1e-9 || math.Abs(after.Y-(before.Y+before.VY)) > 1e-9 {
			t.Fatalf("update %d: position did not integrate velocity", i)
		}
		if math.Abs(after.VX-before.VX*decay) > 1e-12 {
			t.Fatalf("update %d: velocity not decayed", i)
		}
		if math.Hypot(after.VX, after.VY) >= math.Hypot(before.VX, before.VY) {
			t.Fatalf("update %d: speed did not strictly decrease", i)
		}
	}
	if len(st.Particles) != 0 {
		t.Fatalf("particle alive after 60 updates: %+v", st.Particles)
	}
}

func TestParticleAlphaLinear(t *testing.T) {
	p := components.Particle{Life: 15, MaxLife: 30}
	if p.Alpha() != 0.5 {
		t.Errorf("alpha = %v, want 0.5", p.Alpha())
	}
	p.Life = 0
	if p.Alpha() != 0 {
		t.Errorf("dead alpha = %v, want 0", p.Alpha())
	}
}

func TestBurst(t *testing.T) {
	st := newTestState(t, 3)
	pt := st.Tuning.Particles
	Burst(st, 250, 125)

	if len(st.Particles) != pt.Count {
		t.Fatalf("burst size = %d, want %d", len(st.Particles), pt.Count)
	}
	for _, p := range st.Particles {
		speed := math.Hypot(p.VX, p.VY)
		if speed < pt.SpeedMin-1e-9 || speed > pt.SpeedMax+1e-9 {
			t.Errorf("speed %v outside [%v,%v]", speed, pt.SpeedMin, pt.SpeedMax)
		}
		if p.Life != pt.Life || p.MaxLife != pt.Life {
			t.Errorf("life %d/%d, want %d", p.Life, p.MaxLife, pt.Life)
		}
		h, _, _ := colorful.Color{R: float64(p.Color.R) / 255, G: float64(p.Color.G) / 255, B: float64(p.Color.B) / 255}.Hsl()
		// Quantization to 8 bits shifts the hue slightly
		if h < pt.HueMin-2 || h > pt.HueMax+2 {
			t.Errorf("hue %.1f outside golden band", h)
		}
		if p.Color.A != 255 {
			t.Errorf("alpha channel %d, want opaque", p.Color.A)
		}
	}
}

func TestParticlesKeepLiveOnes(t *testing.T) {
	st := newTestState(t, 1)
	st.Particles = []components.Particle{
		{Life: 1, MaxLife: 30},
		{Life: 5, MaxLife: 30},
		{Life: 1, MaxLife: 30},
		{Life: 2, MaxLife: 30},
	}
	NewParticleSystem().Update(st)
	if len(st.Particles) != 2 {
		t.Fatalf("live particles = %d, want 2", len(st.Particles))
	}
	if st.Particles[0].Life != 4 || st.Particles[1].Life != 1 {
		t.Errorf("survivors = %+v", st.Particles)
	}
}
