package render

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/engine"
)

// Scene geometry in logical pixels
const (
	gridSpacing   = 40.0
	gridOffset    = 20.0
	gridDotRadius = 1.0
	borderWidth   = 4.0

	glowBlur       = 15.0
	particleRadius = 3.0

	trailGhosts  = 3
	trailSpacing = 8.0
	trailShrink  = 0.2
	trailAlpha   = 0.3

	// Sprite details are authored for this radius and scaled to the actual one
	spriteRadius = 17.5

	mouthStart = 0.2 * math.Pi
	mouthEnd   = 1.8 * math.Pi

	hudMargin     = 16.0
	hudTextSize   = 20.0
	milestoneSize = 48.0
)

const fullTurn = 2 * math.Pi

// StageOptions configures the render stage
type StageOptions struct {
	// Locale selects number formatting for readouts, e.g. "en-US" or "de"
	Locale string
	// HUD toggles the score, count and elapsed readouts
	HUD bool
	// Hint is shown bottom-left when non-empty
	Hint string
}

// Stage paints one frame of the attract loop onto a Surface
type Stage struct {
	printer *message.Printer
	opts    StageOptions
}

// NewStage creates a stage; an unparseable locale falls back to English
func NewStage(opts StageOptions) *Stage {
	tag, err := language.Parse(opts.Locale)
	if err != nil || opts.Locale == "" {
		tag = language.English
	}
	return &Stage{printer: message.NewPrinter(tag), opts: opts}
}

// Render paints arena, collectibles, particles, pursuer, overlay and readouts
// Internal state drives the scene; readouts use the observable snapshot
func (g *Stage) Render(s Surface, st *engine.State, snap engine.Snapshot) {
	w, h := s.Bounds()
	s.Clear(ColorBackgroundTop)

	g.background(s, w, h)
	for i := range st.Collectibles {
		g.collectible(s, &st.Collectibles[i], st.Now, st.Tuning.Spawner.SpawnAnimation)
	}
	g.particles(s, st.Particles)
	g.pursuer(s, &st.Pursuer)
	g.trail(s, &st.Pursuer)
	if st.Milestone.Active {
		g.milestone(s, &st.Milestone, st.Tuning.Milestone.Threshold, w, h)
	}
	if g.opts.HUD {
		g.hud(s, snap, w, h)
	}

	s.Present()
}

// ScoreText formats the score readout with locale grouping
func (g *Stage) ScoreText(score int) string {
	return g.printer.Sprintf("Score: %d", score)
}

func (g *Stage) background(s Surface, w, h float64) {
	s.FillGradientRect(0, 0, w, h, LinearGradient{
		X0: 0, Y0: 0, X1: w, Y1: h,
		Stops: []GradientStop{
			{Offset: 0, Color: ColorBackgroundTop},
			{Offset: 1, Color: ColorBackgroundBottom},
		},
	})

	for x := gridOffset; x < w; x += gridSpacing {
		for y := gridOffset; y < h; y += gridSpacing {
			s.FillArc(x, y, gridDotRadius, 0, fullTurn, false, ColorGridDot)
		}
	}

	half := borderWidth / 2
	s.StrokeRect(half, half, w-borderWidth, h-borderWidth, borderWidth, ColorGold)
}

func (g *Stage) collectible(s Surface, c *components.Collectible, now, anim time.Duration) {
	scale := 1.0
	if c.Spawning && anim > 0 {
		t := float64(now-c.SpawnedAt) / float64(anim)
		scale = easeOutBack(math.Max(0, math.Min(1, t)))
	}
	v := VariantAt(c.Variant)

	s.Save()
	s.Translate(c.X, c.Y)
	s.Scale(scale, scale)
	s.SetShadow(Shadow{Color: ColorGold, Blur: glowBlur})
	s.FillText(0, 0, v.Glyph, TextStyle{Size: c.Size, Color: v.Body, Align: AlignCenter})
	s.Restore()
}

func (g *Stage) particles(s Surface, ps []components.Particle) {
	for i := range ps {
		p := &ps[i]
		a := p.Alpha()
		s.Save()
		s.SetAlpha(a)
		s.FillArc(p.X, p.Y, particleRadius*a, 0, fullTurn, false, p.Color)
		s.Restore()
	}
}

func (g *Stage) pursuer(s Surface, p *components.Pursuer) {
	r := p.Radius
	k := r / spriteRadius

	s.Save()
	s.Translate(p.X, p.Y)
	s.Rotate(p.Heading)

	s.FillArc(2*k, 2*k, r, 0, fullTurn, false, ColorPursuerShade)
	if p.MouthOpen {
		s.FillArc(0, 0, r, mouthStart, mouthEnd, true, ColorPursuerBody)
		s.StrokeArc(0, 0, r, mouthStart, mouthEnd, true, 2, ColorPursuerOutline)
	} else {
		s.FillArc(0, 0, r, 0, fullTurn, false, ColorPursuerBody)
		s.StrokeArc(0, 0, r, 0, fullTurn, false, 2, ColorPursuerOutline)
	}
	s.FillArc(-5*k, -8*k, 3*k, 0, fullTurn, false, ColorPursuerEye)
	s.FillArc(-4*k, -9*k, 1*k, 0, fullTurn, false, ColorPursuerGlint)

	s.Restore()
}

func (g *Stage) trail(s Surface, p *components.Pursuer) {
	cos, sin := math.Cos(p.Heading), math.Sin(p.Heading)

	s.Save()
	s.SetAlpha(trailAlpha)
	for i := 1; i <= trailGhosts; i++ {
		d := float64(i) * trailSpacing
		r := p.Radius * (1 - float64(i)*trailShrink)
		s.FillArc(p.X-cos*d, p.Y-sin*d, r, 0, fullTurn, false, ColorPursuerBody)
	}
	s.Restore()
}

func (g *Stage) milestone(s Surface, m *components.MilestoneEffect, threshold int, w, h float64) {
	s.Save()
	s.SetAlpha(m.Alpha)
	s.Translate(w/2, h/2)
	s.Scale(m.Scale, m.Scale)
	s.SetShadow(Shadow{Color: ColorGold, Blur: glowBlur * 2})
	s.FillText(0, 0, g.printer.Sprintf("%d POINTS!", m.Thousands*threshold), TextStyle{
		Size:  milestoneSize,
		Color: ColorGold,
		Align: AlignCenter,
		Bold:  true,
	})
	s.FillText(0, milestoneSize, "🎉 Milestone! 🎉", TextStyle{
		Size:  milestoneSize / 2,
		Color: ColorCream,
		Align: AlignCenter,
	})
	s.Restore()
}

func (g *Stage) hud(s Surface, snap engine.Snapshot, w, h float64) {
	top := hudMargin + hudTextSize/2
	bottom := h - hudMargin - hudTextSize/2

	s.FillText(hudMargin, top, g.ScoreText(snap.Score), TextStyle{
		Size: hudTextSize, Color: ColorGold, Align: AlignLeft, Bold: true,
	})
	s.FillText(w-hudMargin, top, g.printer.Sprintf("🍰 Cakes: %d", snap.Collectibles), TextStyle{
		Size: hudTextSize, Color: ColorCream, Align: AlignRight,
	})
	s.FillText(w-hudMargin, bottom, g.printer.Sprintf("%ds", int(snap.Elapsed/time.Second)), TextStyle{
		Size: hudTextSize * 0.7, Color: ColorGold, Align: AlignRight,
	})
	if g.opts.Hint != "" {
		s.FillText(hudMargin, bottom, g.opts.Hint, TextStyle{
			Size: hudTextSize * 0.8, Color: ColorCream, Align: AlignLeft,
		})
	}
}

// easeOutBack overshoots slightly before settling at 1
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
