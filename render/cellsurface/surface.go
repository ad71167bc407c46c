// Package cellsurface rasterises render.Surface primitives onto a tcell screen
// Each terminal cell covers CellWidth x CellHeight logical pixels and is
// sampled at its centre
package cellsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/goldenmunch/attract/render"
)

const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// Shapes whose device radius is below this are drawn as a single dot glyph
	dotThreshold = CellWidth / 2

	// Text smaller than this after transform is not drawn
	minTextPixels = 4.0

	glowStrength = 0.35
)

type cell struct {
	bg   color.RGBA
	ch   rune
	comb []rune
	fg   color.RGBA
	// cont marks the right half of a wide glyph
	cont bool
}

// Surface draws into an off-screen cell buffer and copies it to the screen on
// Present. Not safe for concurrent use
type Surface struct {
	*render.Stack

	screen       tcell.Screen
	originX      int
	originY      int
	cols, rows   int
	cells        []cell
	showOnRender bool
}

// New creates a surface covering cols x rows cells at the screen origin
func New(screen tcell.Screen, cols, rows int) *Surface {
	s := &Surface{Stack: render.NewStack(), screen: screen, showOnRender: true}
	s.SetArea(0, 0, cols, rows)
	return s
}

// SetArea moves and resizes the drawing region in screen cells
func (s *Surface) SetArea(x, y, cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.originX, s.originY = x, y
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
	for i := range s.cells {
		s.cells[i].ch = ' '
	}
}

// SetAutoShow controls whether Present also calls screen.Show
func (s *Surface) SetAutoShow(on bool) {
	s.showOnRender = on
}

// Size returns the region in cells
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Bounds returns the region in logical pixels
func (s *Surface) Bounds() (float64, float64) {
	return float64(s.cols) * CellWidth, float64(s.rows) * CellHeight
}

func (s *Surface) Clear(c color.RGBA) {
	s.Stack.Reset()
	c.A = 255
	for i := range s.cells {
		s.cells[i] = cell{bg: c, ch: ' '}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	st := s.Current()
	s.fillShape(st, x, y, x+w, y+h, func(lx, ly float64) (color.RGBA, bool) {
		return c, lx >= x && lx < x+w && ly >= y && ly < y+h
	})
}

func (s *Surface) FillGradientRect(x, y, w, h float64, g render.LinearGradient) {
	st := s.Current()
	s.fillShape(st, x, y, x+w, y+h, func(lx, ly float64) (color.RGBA, bool) {
		if lx < x || lx >= x+w || ly < y || ly >= y+h {
			return color.RGBA{}, false
		}
		return g.At(g.Param(lx, ly)), true
	})
}

// StrokeRect paints every cell an edge passes through; the transform is
// assumed axis aligned
func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	st := s.Current()
	x0, y0 := st.Matrix.Apply(x, y)
	x1, y1 := st.Matrix.Apply(x+w, y+h)
	c0, r0 := s.cellAt(math.Min(x0, x1), math.Min(y0, y1))
	c1, r1 := s.cellAt(math.Max(x0, x1), math.Max(y0, y1))
	a := st.Alpha * float64(c.A) / 255

	for col := c0; col <= c1; col++ {
		s.blendBg(col, r0, c, a)
		if r1 != r0 {
			s.blendBg(col, r1, c, a)
		}
	}
	for row := r0 + 1; row < r1; row++ {
		s.blendBg(c0, row, c, a)
		if c1 != c0 {
			s.blendBg(c1, row, c, a)
		}
	}
}

func (s *Surface) FillArc(cx, cy, r, start, end float64, wedge bool, c color.RGBA) {
	st := s.Current()
	if st.Shadow.Enabled() {
		s.glowArc(st, cx, cy, r)
	}
	if r*st.Matrix.ScaleFactor() < dotThreshold {
		s.dot(st, cx, cy, r, c)
		return
	}
	s.fillShape(st, cx-r, cy-r, cx+r, cy+r, func(lx, ly float64) (color.RGBA, bool) {
		return c, inArc(lx-cx, ly-cy, r, start, end)
	})
}

func (s *Surface) StrokeArc(cx, cy, r, start, end float64, wedge bool, width float64, c color.RGBA) {
	st := s.Current()
	sf := st.Matrix.ScaleFactor()
	if sf == 0 || r*sf < dotThreshold {
		return
	}
	// Widen the band so thin outlines still hit cell centres
	band := math.Max(width/2, CellWidth/(2*sf))
	s.fillShape(st, cx-r-band, cy-r-band, cx+r+band, cy+r+band, func(lx, ly float64) (color.RGBA, bool) {
		dx, dy := lx-cx, ly-cy
		d := math.Hypot(dx, dy)
		if math.Abs(d-r) > band {
			return c, false
		}
		return c, inSpan(math.Atan2(dy, dx), start, end)
	})
}

// FillText places runes left to right on the row containing y
func (s *Surface) FillText(x, y float64, text string, style render.TextStyle) {
	st := s.Current()
	if style.Size*st.Matrix.ScaleFactor() < minTextPixels || text == "" {
		return
	}
	dx, dy := st.Matrix.Apply(x, y)
	width := runewidth.StringWidth(text)

	col, row := s.cellAt(dx, dy)
	switch style.Align {
	case render.AlignCenter:
		col -= width / 2
	case render.AlignRight:
		col -= width
	}

	if st.Shadow.Enabled() {
		a := st.Alpha * glowStrength * float64(st.Shadow.Color.A) / 255
		for r := row - 1; r <= row+1; r++ {
			for c := col - 1; c <= col+width; c++ {
				s.blendBg(c, r, st.Shadow.Color, a)
			}
		}
	}

	fgAlpha := st.Alpha * float64(style.Color.A) / 255
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			// Combining marks and variation selectors attach to the previous cell
			if prev := s.at(col-1, row); prev != nil && prev.ch != ' ' {
				prev.comb = append(prev.comb, ch)
			}
			continue
		}
		s.putRune(col, row, ch, w, style.Color, fgAlpha)
		col += w
	}
}

// Present copies the buffer to the screen
func (s *Surface) Present() {
	if s.screen == nil {
		return
	}
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := &s.cells[row*s.cols+col]
			if c.cont {
				continue
			}
			style := tcell.StyleDefault.
				Background(toTcell(c.bg)).
				Foreground(toTcell(c.fg))
			s.screen.SetContent(s.originX+col, s.originY+row, c.ch, c.comb, style)
		}
	}
	if s.showOnRender {
		s.screen.Show()
	}
}

// CellAt returns the rune, foreground and background buffered at a cell
func (s *Surface) CellAt(col, row int) (rune, color.RGBA, color.RGBA) {
	c := s.at(col, row)
	if c == nil {
		return 0, color.RGBA{}, color.RGBA{}
	}
	return c.ch, c.fg, c.bg
}

// fillShape samples every cell centre inside the device bbox of a local
// rectangle and blends hits into the background
func (s *Surface) fillShape(st render.GraphicsState, lx0, ly0, lx1, ly1 float64, hit func(lx, ly float64) (color.RGBA, bool)) {
	inv, ok := st.Matrix.Invert()
	if !ok || st.Alpha <= 0 {
		return
	}
	c0, r0, c1, r1 := s.deviceBox(st.Matrix, lx0, ly0, lx1, ly1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * CellWidth
			py := (float64(row) + 0.5) * CellHeight
			lx, ly := inv.Apply(px, py)
			c, in := hit(lx, ly)
			if !in {
				continue
			}
			s.blendBg(col, row, c, st.Alpha*float64(c.A)/255)
		}
	}
}

func (s *Surface) glowArc(st render.GraphicsState, cx, cy, r float64) {
	sh := st.Shadow
	glow := st
	glow.Shadow = render.Shadow{}
	glow.Alpha = st.Alpha * glowStrength
	reach := r + sh.Blur
	ox, oy := cx+sh.OffsetX, cy+sh.OffsetY
	s.fillShape(glow, ox-reach, oy-reach, ox+reach, oy+reach, func(lx, ly float64) (color.RGBA, bool) {
		return sh.Color, math.Hypot(lx-ox, ly-oy) <= reach
	})
}

// dot draws sub-cell shapes as a glyph in the containing cell
func (s *Surface) dot(st render.GraphicsState, cx, cy, r float64, c color.RGBA) {
	dx, dy := st.Matrix.Apply(cx, cy)
	col, row := s.cellAt(dx, dy)
	ch := '·'
	if r*st.Matrix.ScaleFactor() >= 1.5 {
		ch = '•'
	}
	s.putRune(col, row, ch, 1, c, st.Alpha*float64(c.A)/255)
}

func (s *Surface) putRune(col, row int, ch rune, w int, fg color.RGBA, alpha float64) {
	c := s.at(col, row)
	if c == nil || alpha <= 0 {
		return
	}
	// A wide glyph that would overflow the row is dropped
	if w == 2 && s.at(col+1, row) == nil {
		return
	}
	if c.cont {
		if left := s.at(col-1, row); left != nil {
			left.ch, left.comb = ' ', nil
		}
		c.cont = false
	}
	c.ch = ch
	c.comb = nil
	c.fg = render.Blend(c.bg, fg, alpha)
	if w == 2 {
		right := s.at(col+1, row)
		right.ch, right.comb = ' ', nil
		right.cont = true
	}
}

func (s *Surface) blendBg(col, row int, c color.RGBA, alpha float64) {
	if cl := s.at(col, row); cl != nil {
		cl.bg = render.Blend(cl.bg, c, alpha)
	}
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *Surface) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// deviceBox returns the clamped cell range covering a transformed local rectangle
func (s *Surface) deviceBox(m render.Matrix, lx0, ly0, lx1, ly1 float64) (c0, r0, c1, r1 int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{lx0, ly0}, {lx1, ly0}, {lx0, ly1}, {lx1, ly1}} {
		x, y := m.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	c0, r0 = s.cellAt(minX, minY)
	c1, r1 = s.cellAt(maxX, maxY)
	return max(c0, 0), max(r0, 0), min(c1, s.cols-1), min(r1, s.rows-1)
}

// inArc tests a centre-relative point against a filled sector
// Partial arcs are filled as sectors whether or not they are wedges
func inArc(dx, dy, r, start, end float64) bool {
	if dx*dx+dy*dy > r*r {
		return false
	}
	return inSpan(math.Atan2(dy, dx), start, end)
}

func inSpan(angle, start, end float64) bool {
	span := end - start
	if span >= 2*math.Pi || span <= -2*math.Pi {
		return true
	}
	a := math.Mod(angle-start, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a <= math.Mod(span+2*math.Pi, 2*math.Pi)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
