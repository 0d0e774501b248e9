package geometry

import "math"

// =============================================================================
// Containment
// =============================================================================

// InRect: axis-aligned bounds test, edges inclusive
func InRect(r Rect, p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// InCircle: Euclidean distance from center <= radius
func InCircle(center Point, radius float64, p Point) bool {
	if radius < 0 {
		return false
	}
	dx, dy := p.X-center.X, p.Y-center.Y
	return dx*dx+dy*dy <= radius*radius
}

// InEllipse: normalized point-in-ellipse test
func InEllipse(center Point, rx, ry float64, p Point) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := (p.X - center.X) / rx
	ny := (p.Y - center.Y) / ry
	return nx*nx+ny*ny <= 1
}

// InPolygon: even-odd ray casting against the closed path through pts
func InPolygon(pts []Point, p Point) bool {
	if len(pts) < 3 {
		return false
	}

	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			crossX := pi.X + (p.Y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// FlatToPoints: converts [x0, y0, x1, y1, ...] into points. A trailing odd
// value is ignored.
func FlatToPoints(flat []float64) []Point {
	pts := make([]Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pts = append(pts, Point{X: flat[i], Y: flat[i+1]})
	}
	return pts
}

// PointsBox: smallest axis-aligned box around pts
func PointsBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// =============================================================================
// Clamping
// =============================================================================

// ClampOffset: smallest translation (dx, dy) that brings inner back inside
// outer on each axis. When inner is larger than outer on an axis, its
// leading (left/top) edge is aligned with outer's.
func ClampOffset(inner, outer Rect) (float64, float64) {
	return clampAxis(inner.X, inner.Width, outer.X, outer.Width),
		clampAxis(inner.Y, inner.Height, outer.Y, outer.Height)
}

func clampAxis(start, size, outerStart, outerSize float64) float64 {
	switch {
	case size > outerSize:
		return outerStart - start
	case start < outerStart:
		return outerStart - start
	case start+size > outerStart+outerSize:
		return (outerStart + outerSize) - (start + size)
	default:
		return 0
	}
}
