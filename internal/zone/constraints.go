package zone

import (
	"math"

	"designzone/internal/geometry"
	"designzone/internal/scene"

	"go.uber.org/zap"
)

// exactSteps: bisection iterations for shape-exact clamping
const exactSteps = 32

// anchorSamples: grid resolution when searching an outline for a placement
const anchorSamples = 24

// Movable is placed content the constraint logic can measure and move.
// *scene.Node satisfies it.
type Movable interface {
	ClientRect() geometry.Rect
	Position() geometry.Point
	SetPosition(geometry.Point)
}

// EnforceConstraints: translates node the minimum distance needed to keep its
// box inside the zone's bounding box. Position only, size is never changed.
//
// Clamping is against the zone's bounding box, not its outline: content can
// sit inside a circle's bounding square and still cross the curve. Managers
// built WithExactConstraints additionally pull the node toward a placement
// where its box corners are inside the outline. If no such placement exists
// the bounding-box clamp is kept.
//
// Unknown zones are a no-op. Returns true if the node moved.
func (m *Manager) EnforceConstraints(node Movable, zoneID string) bool {
	m.mu.RLock()
	e, ok := m.zones[zoneID]
	m.mu.RUnlock()
	if !ok || node == nil {
		return false
	}

	zoneBox := e.boundary.ClientRect()
	nodeBox := node.ClientRect()

	dx, dy := geometry.ClampOffset(nodeBox, zoneBox)
	if m.exact && e.zone.Type != TypeRect {
		dx, dy = m.exactOffset(e, nodeBox.Translate(dx, dy), zoneBox, dx, dy)
	}
	if dx == 0 && dy == 0 {
		return false
	}

	pos := node.Position()
	node.SetPosition(geometry.Point{X: pos.X + dx, Y: pos.Y + dy})

	m.logger.Debug("content clamped to zone",
		zap.String("zone_id", zoneID),
		zap.Float64("dx", dx),
		zap.Float64("dy", dy),
	)
	return true
}

// exactOffset extends a bounding-box clamp (dx, dy) so that all four corners
// of box land inside the zone outline. The node moves along the line to an
// anchor placement, stopping at the first position that fits.
func (m *Manager) exactOffset(e *entry, box, zoneBox geometry.Rect, dx, dy float64) (float64, float64) {
	inside := func(r geometry.Rect) bool {
		return cornersInside(e.surface, e.boundary, r)
	}
	if inside(box) {
		return dx, dy
	}

	target, ok := anchor(box, zoneBox, inside)
	if !ok {
		m.logger.Debug("content does not fit zone outline", zap.String("zone_id", e.zone.ID))
		return dx, dy
	}

	center := box.Center()
	toX, toY := target.X-center.X, target.Y-center.Y

	// hi always fits, lo never does
	lo, hi := 0.0, 1.0
	for i := 0; i < exactSteps; i++ {
		mid := (lo + hi) / 2
		if inside(box.Translate(toX*mid, toY*mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return dx + toX*hi, dy + toY*hi
}

// anchor: a center for box at which it fits the outline. The zone center is
// tried first; otherwise (concave polygons, thin arms) the sample grid point
// closest to box wins.
func anchor(box, zoneBox geometry.Rect, inside func(geometry.Rect) bool) (geometry.Point, bool) {
	center := box.Center()
	fits := func(p geometry.Point) bool {
		return inside(box.Translate(p.X-center.X, p.Y-center.Y))
	}

	if zc := zoneBox.Center(); fits(zc) {
		return zc, true
	}

	best, bestDist, found := geometry.Point{}, math.Inf(1), false
	for i := 0; i < anchorSamples; i++ {
		for j := 0; j < anchorSamples; j++ {
			p := geometry.Point{
				X: zoneBox.X + zoneBox.Width*(float64(i)+0.5)/anchorSamples,
				Y: zoneBox.Y + zoneBox.Height*(float64(j)+0.5)/anchorSamples,
			}
			ddx, ddy := p.X-center.X, p.Y-center.Y
			if d := ddx*ddx + ddy*ddy; d < bestDist && fits(p) {
				best, bestDist, found = p, d, true
			}
		}
	}
	return best, found
}

func cornersInside(s scene.Surface, boundary *scene.Node, box geometry.Rect) bool {
	for _, c := range box.Corners() {
		if !s.HitTest(boundary, c) {
			return false
		}
	}
	return true
}
