// Package geometry holds the 2D primitives shared by the zone manager, the
// content validator and the drag/resize layer: boxes, bounds, grid snapping
// and per-shape containment tests.
package geometry

import "math"

// DefaultGridSize: grid spacing used by SnapToDefaultGrid
const DefaultGridSize = 10.0

// =============================================================================
// Primitives
// =============================================================================

// Point: x,y coordinates on the design surface
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect: axis-aligned box, origin at top-left
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center: midpoint of the box
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners: top-left, top-right, bottom-right, bottom-left
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.MaxX(), Y: r.Y},
		{X: r.MaxX(), Y: r.MaxY()},
		{X: r.X, Y: r.MaxY()},
	}
}

// ContainsRect: true if other lies fully inside r (edges inclusive)
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.MaxX() <= r.MaxX() && other.MaxY() <= r.MaxY()
}

// Translate: returns r moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Bounds: union box of a set of nodes
type Bounds struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	MaxX   float64 `json:"maxX"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect: bounds as an origin + size box
func (b Bounds) Rect() Rect {
	return Rect{X: b.MinX, Y: b.MinY, Width: b.Width, Height: b.Height}
}

// Boxer is anything that reports its own untransformed x, y, width and height.
type Boxer interface {
	Box() Rect
}

// =============================================================================
// Helpers
// =============================================================================

// CalculateBounds: union bounding box of the nodes' own boxes.
// An empty list yields all-zero bounds.
func CalculateBounds[T Boxer](nodes []T) Bounds {
	if len(nodes) == 0 {
		return Bounds{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, n := range nodes {
		box := n.Box()
		minX = math.Min(minX, box.X)
		minY = math.Min(minY, box.Y)
		maxX = math.Max(maxX, box.MaxX())
		maxY = math.Max(maxY, box.MaxY())
	}

	return Bounds{
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// SnapToGrid: rounds each coordinate to the nearest multiple of gridSize.
// Halves round up, so -15 snaps to -10 on a grid of 10.
// A non-positive (or NaN) grid returns the input unchanged.
func SnapToGrid(x, y, gridSize float64) (float64, float64) {
	if !(gridSize > 0) || math.IsInf(gridSize, 0) {
		return x, y
	}
	return snap(x, gridSize), snap(y, gridSize)
}

// SnapToDefaultGrid: SnapToGrid with DefaultGridSize
func SnapToDefaultGrid(x, y float64) (float64, float64) {
	return SnapToGrid(x, y, DefaultGridSize)
}

func snap(v, grid float64) float64 {
	return math.Floor(v/grid+0.5) * grid
}

// TransformedBox: axis-aligned box of a w×h rectangle placed at (x, y),
// scaled by (scaleX, scaleY) and rotated by rotation degrees about (x, y).
func TransformedBox(x, y, w, h, rotation, scaleX, scaleY float64) Rect {
	sw, sh := w*scaleX, h*scaleY
	if rotation == 0 {
		return normalize(Rect{X: x, Y: y, Width: sw, Height: sh})
	}

	rad := rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	local := [4]Point{{0, 0}, {sw, 0}, {sw, sh}, {0, sh}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range local {
		rx := x + p.X*cos - p.Y*sin
		ry := y + p.X*sin + p.Y*cos
		minX = math.Min(minX, rx)
		minY = math.Min(minY, ry)
		maxX = math.Max(maxX, rx)
		maxY = math.Max(maxY, ry)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// normalize flips negative sizes produced by mirrored scaling.
func normalize(r Rect) Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}
