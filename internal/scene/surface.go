// Package scene is the rendering-surface abstraction the zone manager draws
// on, plus Layer, an in-memory retained-mode implementation of it.
package scene

import (
	"fmt"

	"designzone/internal/geometry"

	"github.com/google/uuid"
)

// Surface: capabilities the zone logic needs from a 2D rendering backend
type Surface interface {
	CreateShape(kind Kind, geom Geometry, style Style) (*Node, error)
	CreateText(text string, at geometry.Point, style Style) *Node
	Group(name string, children ...*Node) *Node

	// Add inserts n on top of the paint order.
	Add(n *Node)
	MoveToBottom(n *Node)
	Index(n *Node) int

	HitTest(n *Node, p geometry.Point) bool
	SetVisible(n *Node, visible bool)
	Redraw()
	Destroy(n *Node)
}

// textWidthFactor: average glyph width relative to font size
const textWidthFactor = 0.6

func newID() string {
	return uuid.NewString()
}

// newShape validates geom for kind and builds the node.
func newShape(kind Kind, geom Geometry, style Style) (*Node, error) {
	switch kind {
	case KindRect, KindImage:
		if geom.Width < 0 || geom.Height < 0 {
			return nil, fmt.Errorf("%s: negative size %gx%g", kind, geom.Width, geom.Height)
		}
	case KindCircle:
		if geom.Radius < 0 {
			return nil, fmt.Errorf("circle: negative radius %g", geom.Radius)
		}
	case KindEllipse:
		if geom.RadiusX < 0 || geom.RadiusY < 0 {
			return nil, fmt.Errorf("ellipse: negative radii %g,%g", geom.RadiusX, geom.RadiusY)
		}
	case KindPolygon:
		if len(geom.Points) < 6 || len(geom.Points)%2 != 0 {
			return nil, fmt.Errorf("polygon: need at least 3 coordinate pairs, got %d values", len(geom.Points))
		}
		geom.Points = append([]float64(nil), geom.Points...)
	default:
		return nil, fmt.Errorf("unsupported shape kind: %s", kind)
	}
	return newNode(kind, geom, style), nil
}

func newText(text string, at geometry.Point, style Style) *Node {
	n := newNode(KindText, Geometry{
		X:      at.X,
		Y:      at.Y,
		Width:  float64(len([]rune(text))) * style.FontSize * textWidthFactor,
		Height: style.FontSize,
	}, style)
	n.Text = text
	return n
}
