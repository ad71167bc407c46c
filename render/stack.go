package render

// GraphicsState is the per-save drawing state
type GraphicsState struct {
	Matrix Matrix
	Alpha  float64
	Shadow Shadow
}

// Stack tracks the current graphics state and its saved copies
// Surfaces embed it to implement the state half of Surface
type Stack struct {
	cur   GraphicsState
	saved []GraphicsState
}

// NewStack returns a stack at identity, fully opaque, no shadow
func NewStack() *Stack {
	s := &Stack{}
	s.Reset()
	return s
}

// Reset drops saved states and restores defaults
func (s *Stack) Reset() {
	s.cur = GraphicsState{Matrix: Identity(), Alpha: 1}
	s.saved = s.saved[:0]
}

// Current returns the active state
func (s *Stack) Current() GraphicsState {
	return s.cur
}

// Depth returns the number of outstanding saves
func (s *Stack) Depth() int {
	return len(s.saved)
}

func (s *Stack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last save; unbalanced calls are ignored
func (s *Stack) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *Stack) Translate(dx, dy float64) {
	s.cur.Matrix = s.cur.Matrix.Translate(dx, dy)
}

func (s *Stack) Rotate(theta float64) {
	s.cur.Matrix = s.cur.Matrix.Rotate(theta)
}

func (s *Stack) Scale(sx, sy float64) {
	s.cur.Matrix = s.cur.Matrix.Scale(sx, sy)
}

// SetAlpha sets the global alpha, clamped to [0, 1]
func (s *Stack) SetAlpha(a float64) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	s.cur.Alpha = a
}

func (s *Stack) SetShadow(sh Shadow) {
	s.cur.Shadow = sh
}
