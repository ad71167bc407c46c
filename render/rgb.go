package render

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses "#RRGGBB" into an opaque colour; malformed input yields black
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RGBA builds a colour with a fractional alpha, stored non-premultiplied
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: clamp(a * 255)}
}

// WithAlpha scales the alpha channel of c by a
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = clamp(float64(c.A) * a)
	return c
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend composites src over c with the given alpha, ignoring src.A
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1.0 {
		src.A = 255
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return color.RGBA{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
		A: 255,
	}
}

// Over composites src over c using src.A scaled by alpha
func Over(c, src color.RGBA, alpha float64) color.RGBA {
	return Blend(c, src, float64(src.A)/255*alpha)
}

// At samples the gradient at parameter t in [0, 1]
func (g LinearGradient) At(t float64) color.RGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return stops[0].Color
	}
	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset }) {
		stops = append([]GradientStop(nil), stops...)
		sort.Slice(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	}

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerp(a.Color, b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

// Param projects a device-independent point onto the gradient axis
func (g LinearGradient) Param(x, y float64) float64 {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / den
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: clamp(float64(a.A) + (float64(b.A)-float64(a.A))*t)}
}
