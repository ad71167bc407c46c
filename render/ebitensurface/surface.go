// Package ebitensurface implements render.Surface on an ebiten image
package ebitensurface

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/goldenmunch/attract/render"
)

const (
	// Debug font metrics
	glyphWidth  = 6.0
	glyphHeight = 16.0

	glowLayers   = 3
	glowStrength = 0.18

	textCacheLimit = 64
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage avoids sampling the image edges
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws onto the image set by SetTarget, normally the screen passed
// to ebiten's Draw. Primitives are no-ops while no target is set
type Surface struct {
	*render.Stack

	target        *ebiten.Image
	width, height float64

	vertices []ebiten.Vertex
	indices  []uint16
	text     map[string]*ebiten.Image
}

// New creates a surface with the given logical bounds
func New(width, height int) *Surface {
	return &Surface{
		Stack:  render.NewStack(),
		width:  float64(width),
		height: float64(height),
		text:   make(map[string]*ebiten.Image),
	}
}

// SetTarget binds the image the next frame is drawn onto
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Resize changes the logical bounds
func (s *Surface) Resize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

func (s *Surface) Bounds() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Clear(c color.RGBA) {
	s.Stack.Reset()
	if s.target != nil {
		s.target.Fill(c)
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	st := s.Current()
	s.fillPolygon(render.RectPolygon(st.Matrix, x, y, w, h), st.Alpha, func(render.Point) color.RGBA { return c })
}

func (s *Surface) FillGradientRect(x, y, w, h float64, g render.LinearGradient) {
	st := s.Current()
	inv, ok := st.Matrix.Invert()
	if !ok {
		return
	}
	// Per-vertex colours are exact for two-stop gradients
	s.fillPolygon(render.RectPolygon(st.Matrix, x, y, w, h), st.Alpha, func(p render.Point) color.RGBA {
		lx, ly := inv.Apply(p.X, p.Y)
		return g.At(g.Param(lx, ly))
	})
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	st := s.Current()
	s.strokePolygon(render.RectPolygon(st.Matrix, x, y, w, h), true, width*st.Matrix.ScaleFactor(), c, st.Alpha)
}

func (s *Surface) FillArc(cx, cy, r, start, end float64, wedge bool, c color.RGBA) {
	st := s.Current()
	if st.Shadow.Enabled() {
		s.glow(st, cx, cy, r)
	}
	pts := render.ArcPolygon(st.Matrix, cx, cy, r, start, end, wedge)
	s.fillPolygon(pts, st.Alpha, func(render.Point) color.RGBA { return c })
}

func (s *Surface) StrokeArc(cx, cy, r, start, end float64, wedge bool, width float64, c color.RGBA) {
	st := s.Current()
	pts := render.ArcPolygon(st.Matrix, cx, cy, r, start, end, wedge)
	closed := wedge || math.Abs(end-start) >= 2*math.Pi
	s.strokePolygon(pts, closed, width*st.Matrix.ScaleFactor(), c, st.Alpha)
}

// FillText draws ASCII through the debug font scaled to style.Size
// Glyphs outside the font are drawn as a disc in style.Color
func (s *Surface) FillText(x, y float64, text string, style render.TextStyle) {
	if s.target == nil || text == "" {
		return
	}
	st := s.Current()
	if st.Shadow.Enabled() {
		s.glow(st, x, y, style.Size/2)
	}
	if !isASCII(text) {
		pts := render.ArcPolygon(st.Matrix, x, y, style.Size*0.45, 0, 2*math.Pi, false)
		s.fillPolygon(pts, st.Alpha, func(render.Point) color.RGBA { return style.Color })
		return
	}

	img := s.textImage(text)
	k := style.Size / glyphHeight
	w := float64(utf8.RuneCountInString(text)) * glyphWidth * k

	ox := x
	switch style.Align {
	case render.AlignCenter:
		ox -= w / 2
	case render.AlignRight:
		ox -= w
	}
	oy := y - style.Size/2

	m := st.Matrix.Translate(ox, oy).Scale(k, k)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, m.A)
	op.GeoM.SetElement(1, 0, m.B)
	op.GeoM.SetElement(0, 1, m.C)
	op.GeoM.SetElement(1, 1, m.D)
	op.GeoM.SetElement(0, 2, m.E)
	op.GeoM.SetElement(1, 2, m.F)
	op.ColorScale.ScaleWithColor(style.Color)
	op.ColorScale.ScaleAlpha(float32(st.Alpha))
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}

// Present is a no-op; ebiten presents after Draw returns
func (s *Surface) Present() {}

func (s *Surface) glow(st render.GraphicsState, cx, cy, r float64) {
	sh := st.Shadow
	for i := glowLayers; i >= 1; i-- {
		reach := r + sh.Blur*float64(i)/glowLayers
		pts := render.ArcPolygon(st.Matrix, cx+sh.OffsetX, cy+sh.OffsetY, reach, 0, 2*math.Pi, false)
		s.fillPolygon(pts, st.Alpha*glowStrength, func(render.Point) color.RGBA { return sh.Color })
	}
}

// fillPolygon fans triangles from the first vertex
// Every polygon handed in is star-shaped around it: rects, discs and wedges from their centre
func (s *Surface) fillPolygon(pts []render.Point, alpha float64, shade func(render.Point) color.RGBA) {
	if s.target == nil || len(pts) < 3 || alpha <= 0 {
		return
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range pts {
		v := ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)}
		setColor(&v, shade(p), alpha)
		s.vertices = append(s.vertices, v)
	}
	for i := 1; i+1 < len(pts); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) strokePolygon(pts []render.Point, closed bool, width float64, c color.RGBA, alpha float64) {
	if s.target == nil || len(pts) < 2 || alpha <= 0 || width <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}

	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	for i := range s.vertices {
		setColor(&s.vertices[i], c, alpha)
	}
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// textImage renders text once through the debug font and caches it
func (s *Surface) textImage(text string) *ebiten.Image {
	if img, ok := s.text[text]; ok {
		return img
	}
	if len(s.text) >= textCacheLimit {
		for k, img := range s.text {
			img.Deallocate()
			delete(s.text, k)
		}
	}
	n := utf8.RuneCountInString(text)
	img := ebiten.NewImage(int(float64(n)*glyphWidth)+1, int(glyphHeight))
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.text[text] = img
	return img
}

func setColor(v *ebiten.Vertex, c color.RGBA, alpha float64) {
	v.SrcX, v.SrcY = 1, 1
	v.ColorR = float32(c.R) / 255
	v.ColorG = float32(c.G) / 255
	v.ColorB = float32(c.B) / 255
	v.ColorA = float32(float64(c.A) / 255 * alpha)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
