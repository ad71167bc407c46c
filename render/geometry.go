package render

import "math"

// Point is a device-space vertex
type Point struct {
	X, Y float64
}

const (
	minArcSegments = 8
	maxArcSegments = 96
	// arcSegmentLength is the target device length of one outline segment
	arcSegmentLength = 4.0
)

// ArcPolygon returns the transformed outline of an arc
// A wedge starts at the centre; a full turn is a closed circle
func ArcPolygon(m Matrix, cx, cy, r, start, end float64, wedge bool) []Point {
	span := end - start
	full := math.Abs(span) >= 2*math.Pi
	if full {
		span = 2 * math.Pi
	}

	n := int(math.Abs(span) * r * m.ScaleFactor() / arcSegmentLength)
	n = max(minArcSegments, min(n, maxArcSegments))

	pts := make([]Point, 0, n+2)
	if wedge && !full {
		x, y := m.Apply(cx, cy)
		pts = append(pts, Point{x, y})
	}
	last := n
	if full {
		// The closing vertex would duplicate the first
		last = n - 1
	}
	for i := 0; i <= last; i++ {
		a := start + span*float64(i)/float64(n)
		x, y := m.Apply(cx+r*math.Cos(a), cy+r*math.Sin(a))
		pts = append(pts, Point{x, y})
	}
	return pts
}

// RectPolygon returns the transformed corners of a rectangle, clockwise
func RectPolygon(m Matrix, x, y, w, h float64) []Point {
	pts := make([]Point, 4)
	for i, c := range [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		px, py := m.Apply(c[0], c[1])
		pts[i] = Point{px, py}
	}
	return pts
}
