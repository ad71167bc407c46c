package render

import "image/color"

// OpKind names a recorded paint primitive
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillGradientRect
	OpStrokeRect
	OpFillArc
	OpStrokeArc
	OpFillText
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill_rect"
	case OpFillGradientRect:
		return "fill_gradient_rect"
	case OpStrokeRect:
		return "stroke_rect"
	case OpFillArc:
		return "fill_arc"
	case OpStrokeArc:
		return "stroke_arc"
	case OpFillText:
		return "fill_text"
	case OpPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive with the graphics state it was issued under
// Geometry is in local (pre-transform) coordinates
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	R          float64
	Start, End float64
	Wedge      bool
	Width      float64
	Color      color.RGBA
	Gradient   LinearGradient
	Text       string
	Style      TextStyle
	State      GraphicsState
}

// Device maps the op origin through its transform
func (o Op) Device() (float64, float64) {
	return o.State.Matrix.Apply(o.X, o.Y)
}

// Recorder is a Surface that records primitives instead of drawing
type Recorder struct {
	*Stack
	Width, Height float64
	Ops           []Op
	Frames        int
}

// NewRecorder creates a recorder with the given logical bounds
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Stack: NewStack(), Width: w, Height: h}
}

func (r *Recorder) Bounds() (float64, float64) {
	return r.Width, r.Height
}

func (r *Recorder) Clear(c color.RGBA) {
	r.Stack.Reset()
	r.Ops = r.Ops[:0]
	r.record(Op{Kind: OpClear, Color: c, W: r.Width, H: r.Height})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.record(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillGradientRect(x, y, w, h float64, g LinearGradient) {
	r.record(Op{Kind: OpFillGradientRect, X: x, Y: y, W: w, H: h, Gradient: g})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	r.record(Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Width: width, Color: c})
}

func (r *Recorder) FillArc(cx, cy, radius, start, end float64, wedge bool, c color.RGBA) {
	r.record(Op{Kind: OpFillArc, X: cx, Y: cy, R: radius, Start: start, End: end, Wedge: wedge, Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end float64, wedge bool, width float64, c color.RGBA) {
	r.record(Op{Kind: OpStrokeArc, X: cx, Y: cy, R: radius, Start: start, End: end, Wedge: wedge, Width: width, Color: c})
}

func (r *Recorder) FillText(x, y float64, text string, style TextStyle) {
	r.record(Op{Kind: OpFillText, X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

func (r *Recorder) Present() {
	r.Frames++
	r.record(Op{Kind: OpPresent})
}

// Count returns how many ops of kind were recorded since the last Clear
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every FillText string in paint order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpFillText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) record(op Op) {
	op.State = r.Stack.Current()
	r.Ops = append(r.Ops, op)
}
