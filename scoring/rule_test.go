package scoring

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goldenmunch/attract/parameter"
)

func TestFormulaPoints(t *testing.T) {
	f := FromTuning(parameter.Default().Score)

	tests := []struct {
		size float64
		want int
	}{
		{30, 15},
		{40, 18},
		{44.9, 19},
		{45, 20},
		{0, 5},
	}
	for _, tt := range tests {
		if got := f.Points(tt.size); got != tt.want {
			t.Errorf("Points(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFormulaNeverNegative(t *testing.T) {
	f := Formula{Divisor: 3, Base: -100}
	if got := f.Points(30); got != 0 {
		t.Errorf("Points = %d, want 0", got)
	}
}

func TestLuaRuleString(t *testing.T) {
	r, err := NewLuaRuleString("function points(size) return size * 2 + 1 end", Formula{Divisor: 3}, nil)
	if err != nil {
		t.Fatalf("NewLuaRuleString: %v", err)
	}
	defer r.Close()

	if got := r.Points(10.6); got != 22 {
		t.Errorf("Points = %d, want 22", got)
	}
}

func TestLuaRuleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.lua")
	src := "function points(size)\n  if size > 40 then return 50 end\n  return 10\nend\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewLuaRule(path, nil, nil)
	if err != nil {
		t.Fatalf("NewLuaRule: %v", err)
	}
	defer r.Close()

	if r.Points(41) != 50 || r.Points(30) != 10 {
		t.Errorf("unexpected script results")
	}
}

func TestLuaRuleMissingFunction(t *testing.T) {
	_, err := NewLuaRuleString("x = 1", nil, nil)
	if !errors.Is(err, ErrMissingFunction) {
		t.Fatalf("expected ErrMissingFunction, got %v", err)
	}
}

func TestLuaRuleFallback(t *testing.T) {
	fallback := Formula{Divisor: 3, Base: 5}

	r, err := NewLuaRuleString("function points(size) error('boom') end", fallback, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if got := r.Points(30); got != 15 {
		t.Errorf("runtime error fallback = %d, want 15", got)
	}

	r2, err := NewLuaRuleString("function points(size) return 'many' end", fallback, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	if got := r2.Points(30); got != 15 {
		t.Errorf("non-number fallback = %d, want 15", got)
	}
}

func TestLuaRuleClampsNegative(t *testing.T) {
	r, err := NewLuaRuleString("function points(size) return -7 end", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if got := r.Points(30); got != 0 {
		t.Errorf("Points = %d, want 0", got)
	}
}
