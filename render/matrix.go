package render

import "math"

// Matrix is a 2D affine transform in canvas order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns m followed by n applied in m's local space (m * n)
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate appends a translation in local space
func (m Matrix) Translate(dx, dy float64) Matrix {
	return m.Mul(Matrix{A: 1, D: 1, E: dx, F: dy})
}

// Rotate appends a rotation in local space
func (m Matrix) Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return m.Mul(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Scale appends a scale in local space
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{A: sx, D: sy})
}

// Apply maps a local point to device space
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse transform; ok is false for singular matrices
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// ScaleFactor is the geometric mean axis scale, used for radii and widths
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
