package scene

import (
	"math"

	"designzone/internal/design"
	"designzone/internal/geometry"
)

// Kind of scene-graph node
type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindEllipse Kind = "ellipse"
	KindPolygon Kind = "polygon"
	KindText    Kind = "text"
	KindImage   Kind = "image"
	KindGroup   Kind = "group"
)

// =============================================================================
// Geometry & Style
// =============================================================================

// Geometry holds the local shape of a node. X, Y is the node origin: the
// top-left corner for rects, images and text, the center for circles and
// ellipses. Polygon points are relative to the origin.
type Geometry struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Radius  float64
	RadiusX float64
	RadiusY float64
	Points  []float64
}

// Style: paint properties, not used for geometry
type Style struct {
	Stroke      string
	StrokeWidth float64
	Dash        []float64
	Fill        string
	FontSize    float64
}

// =============================================================================
// Node
// =============================================================================

// Node is one element of the retained scene graph. Transform (rotation in
// degrees, scale) is applied about the origin.
type Node struct {
	ID       string
	Name     string
	Kind     Kind
	Geometry Geometry
	Style    Style
	Text     string
	Filters  []string
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Visible  bool

	// System marks editor chrome (zone outlines, labels) that is not user content.
	System bool

	children  []*Node
	parent    *Node
	destroyed bool
}

func newNode(kind Kind, geom Geometry, style Style) *Node {
	return &Node{
		ID:       newID(),
		Kind:     kind,
		Geometry: geom,
		Style:    style,
		ScaleX:   1,
		ScaleY:   1,
		Visible:  true,
	}
}

// NewContent: creates a user content node (rect, image, text, ...) at x, y
func NewContent(kind Kind, x, y, width, height float64) *Node {
	return newNode(kind, Geometry{X: x, Y: y, Width: width, Height: height}, Style{})
}

// FromDesign rebuilds a detached content node (and its children) from a
// design snapshot. Shapes come back as rects.
func FromDesign(d design.Node) *Node {
	kind := KindRect
	switch d.Kind {
	case design.KindText:
		kind = KindText
	case design.KindImage:
		kind = KindImage
	case design.KindGroup:
		kind = KindGroup
	}

	n := NewContent(kind, d.X, d.Y, d.Width, d.Height)
	if d.ID != "" {
		n.ID = d.ID
	}
	n.Text = d.Text
	n.Rotation = d.Rotation
	n.ScaleX, n.ScaleY = d.Scale()
	if len(d.Filters) > 0 {
		n.Filters = append([]string(nil), d.Filters...)
	}
	for _, c := range d.Children {
		n.Append(FromDesign(c))
	}
	return n
}

// Children: snapshot of the node's children
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Destroyed() bool { return n.destroyed }

// Append: adds child to a group node
func (n *Node) Append(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Position: the node origin
func (n *Node) Position() geometry.Point {
	return geometry.Point{X: n.Geometry.X, Y: n.Geometry.Y}
}

// SetPosition: moves the node origin; group children move with it
func (n *Node) SetPosition(p geometry.Point) {
	n.Translate(p.X-n.Geometry.X, p.Y-n.Geometry.Y)
}

// Translate: moves the node (and its children) by dx, dy
func (n *Node) Translate(dx, dy float64) {
	n.Geometry.X += dx
	n.Geometry.Y += dy
	for _, c := range n.children {
		c.Translate(dx, dy)
	}
}

func (n *Node) scale() (float64, float64) {
	sx, sy := n.ScaleX, n.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// toWorld maps a local point through scale, rotation and origin.
func (n *Node) toWorld(p geometry.Point) geometry.Point {
	sx, sy := n.scale()
	x, y := p.X*sx, p.Y*sy
	if n.Rotation != 0 {
		sin, cos := math.Sincos(n.Rotation * math.Pi / 180)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return geometry.Point{X: n.Geometry.X + x, Y: n.Geometry.Y + y}
}

// toLocal is the inverse of toWorld.
func (n *Node) toLocal(p geometry.Point) geometry.Point {
	sx, sy := n.scale()
	x, y := p.X-n.Geometry.X, p.Y-n.Geometry.Y
	if n.Rotation != 0 {
		sin, cos := math.Sincos(-n.Rotation * math.Pi / 180)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return geometry.Point{X: x / sx, Y: y / sy}
}

// ClientRect: axis-aligned box of the node on the surface, transform included
func (n *Node) ClientRect() geometry.Rect {
	g := n.Geometry
	switch n.Kind {
	case KindCircle:
		return n.ellipseBox(g.Radius, g.Radius)
	case KindEllipse:
		return n.ellipseBox(g.RadiusX, g.RadiusY)
	case KindPolygon:
		local := geometry.FlatToPoints(g.Points)
		world := make([]geometry.Point, len(local))
		for i, p := range local {
			world[i] = n.toWorld(p)
		}
		return geometry.PointsBox(world)
	case KindGroup:
		return n.groupBox()
	default:
		sx, sy := n.scale()
		return geometry.TransformedBox(g.X, g.Y, g.Width, g.Height, n.Rotation, sx, sy)
	}
}

func (n *Node) ellipseBox(rx, ry float64) geometry.Rect {
	sx, sy := n.scale()
	a, b := math.Abs(rx*sx), math.Abs(ry*sy)
	if n.Rotation != 0 {
		sin, cos := math.Sincos(n.Rotation * math.Pi / 180)
		a, b = math.Sqrt(a*a*cos*cos+b*b*sin*sin), math.Sqrt(a*a*sin*sin+b*b*cos*cos)
	}
	return geometry.Rect{X: n.Geometry.X - a, Y: n.Geometry.Y - b, Width: 2 * a, Height: 2 * b}
}

func (n *Node) groupBox() geometry.Rect {
	if len(n.children) == 0 {
		return geometry.Rect{X: n.Geometry.X, Y: n.Geometry.Y}
	}

	pts := make([]geometry.Point, 0, len(n.children)*2)
	for _, c := range n.children {
		r := c.ClientRect()
		pts = append(pts, geometry.Point{X: r.X, Y: r.Y}, geometry.Point{X: r.MaxX(), Y: r.MaxY()})
	}
	return geometry.PointsBox(pts)
}

// contains: native geometric containment in world coordinates
func (n *Node) contains(p geometry.Point) bool {
	g := n.Geometry
	switch n.Kind {
	case KindGroup:
		for _, c := range n.children {
			if c.contains(p) {
				return true
			}
		}
		return false
	case KindCircle:
		return geometry.InCircle(geometry.Point{}, g.Radius, n.toLocal(p))
	case KindEllipse:
		return geometry.InEllipse(geometry.Point{}, g.RadiusX, g.RadiusY, n.toLocal(p))
	case KindPolygon:
		return geometry.InPolygon(geometry.FlatToPoints(g.Points), n.toLocal(p))
	default:
		return geometry.InRect(geometry.Rect{Width: g.Width, Height: g.Height}, n.toLocal(p))
	}
}

// Design: converts the node (and its children) into a design.Node snapshot
func (n *Node) Design() design.Node {
	g := n.Geometry
	box := geometry.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
	switch n.Kind {
	case KindCircle, KindEllipse, KindPolygon, KindGroup:
		box = n.ClientRect()
	}

	out := design.Node{
		ID:       n.ID,
		Kind:     designKind(n.Kind),
		X:        box.X,
		Y:        box.Y,
		Width:    box.Width,
		Height:   box.Height,
		Text:     n.Text,
		Rotation: n.Rotation,
		ScaleX:   n.ScaleX,
		ScaleY:   n.ScaleY,
	}
	if len(n.Filters) > 0 {
		out.Filters = append([]string(nil), n.Filters...)
	}
	for _, c := range n.children {
		out.Children = append(out.Children, c.Design())
	}
	return out
}

func designKind(k Kind) design.Kind {
	switch k {
	case KindText:
		return design.KindText
	case KindImage:
		return design.KindImage
	case KindGroup:
		return design.KindGroup
	default:
		return design.KindShape
	}
}
