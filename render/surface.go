package render

import "image/color"

// Align is horizontal text anchoring relative to the x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes glyph placement; text is vertically centred on y
type TextStyle struct {
	Size  float64 // logical pixel height
	Color color.RGBA
	Align Align
	Bold  bool
}

// Shadow is the glow/drop-shadow applied to subsequent fills
// The zero value disables it
type Shadow struct {
	Color   color.RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Enabled reports whether the shadow paints anything
func (s Shadow) Enabled() bool {
	return s.Color.A > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// GradientStop is a colour at a normalized offset along a gradient
type GradientStop struct {
	Offset float64
	Color  color.RGBA
}

// LinearGradient runs from (X0,Y0) to (X1,Y1) in the current user space
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
}

// Surface is the drawing capability set the stage paints through
// Transforms, alpha and shadow apply to every subsequent primitive and are
// scoped by Save/Restore
type Surface interface {
	// Bounds returns the logical size in pixels
	Bounds() (w, h float64)

	// Clear fills the whole surface with c and resets the state stack
	Clear(c color.RGBA)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)
	Scale(sx, sy float64)
	SetAlpha(a float64)
	SetShadow(s Shadow)

	FillRect(x, y, w, h float64, c color.RGBA)
	FillGradientRect(x, y, w, h float64, g LinearGradient)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)

	// FillArc fills the sector from start to end (radians, clockwise in
	// screen space); wedge closes the path through the centre
	FillArc(cx, cy, r, start, end float64, wedge bool, c color.RGBA)
	StrokeArc(cx, cy, r, start, end float64, wedge bool, width float64, c color.RGBA)

	FillText(x, y float64, text string, style TextStyle)

	// Present flushes the frame to the output device
	Present()
}
