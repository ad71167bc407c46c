package kiosk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goldenmunch/attract/config"
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/parameter"
	"github.com/goldenmunch/attract/scoring"
)

func TestAssembleDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	k, err := Assemble(cfg, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	defer k.Close()

	if _, ok := k.Rule.(scoring.Formula); !ok {
		t.Errorf("rule = %T, want scoring.Formula", k.Rule)
	}
	if k.Tuning != parameter.Default() {
		t.Error("default config should use the default tuning")
	}

	host := engine.NewManualHost()
	opts := k.Options(host, nil, nil)
	if opts.ExitRoute != "/" || opts.Stage.Locale != "en" || len(opts.Handlers) != 1 {
		t.Errorf("options = %+v", opts)
	}
	if _, err := idle.New(opts); err != nil {
		t.Fatalf("idle.New: %v", err)
	}
}

func TestAssembleScriptedScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.lua")
	if err := os.WriteFile(path, []byte("function points(size) return size end"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(`score_script = "` + filepath.ToSlash(path) + `"`)
	if err != nil {
		t.Fatal(err)
	}

	k, err := Assemble(cfg, nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	defer k.Close()

	if got := k.Rule.Points(33); got != 33 {
		t.Errorf("scripted points = %d, want 33", got)
	}
}

func TestAssembleMissingScript(t *testing.T) {
	cfg, err := config.Parse(`score_script = "/nonexistent/score.lua"`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Assemble(cfg, nil); err == nil {
		t.Fatal("expected error for missing score script")
	}
}

func TestAssembleUnknownProfile(t *testing.T) {
	cfg, err := config.Parse(`profile = "nope"`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Assemble(cfg, nil); !errors.Is(err, parameter.ErrUnknownProfile) {
		t.Fatalf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestSeedMakesRunsRepeatable(t *testing.T) {
	cfg, err := config.Parse("seed = 42")
	if err != nil {
		t.Fatal(err)
	}
	k, err := Assemble(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer k.Close()

	positions := func() []float64 {
		host := engine.NewManualHost()
		sim, err := idle.New(k.Options(host, nil, nil))
		if err != nil {
			t.Fatal(err)
		}
		sim.Resize(800, 600)
		sim.Start()
		host.Run(0, parameter.ReferenceFrame, 200)
		var out []float64
		for _, c := range sim.State().Collectibles {
			out = append(out, c.X, c.Y)
		}
		return out
	}

	a, b := positions(), positions()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs differ in population: %d vs %d", len(a)/2, len(b)/2)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
