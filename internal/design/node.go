// Package design describes user-authored content on the design surface as
// plain values, decoupled from whatever scene graph produced them.
package design

import "designzone/internal/geometry"

// Kind of placeable element
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindShape Kind = "shape"
	KindGroup Kind = "group"
)

// Node is a snapshot of one element read from the rendering surface.
// ScaleX/ScaleY of zero mean "not set" and are read as 1.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Width    float64  `json:"width" yaml:"width"`
	Height   float64  `json:"height" yaml:"height"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Filters  []string `json:"filters,omitempty" yaml:"filters,omitempty"`
	Children []Node   `json:"children,omitempty" yaml:"children,omitempty"`
	Rotation float64  `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	ScaleX   float64  `json:"scaleX,omitempty" yaml:"scaleX,omitempty"`
	ScaleY   float64  `json:"scaleY,omitempty" yaml:"scaleY,omitempty"`
}

// Box: the node's own x, y, width and height
func (n Node) Box() geometry.Rect {
	return geometry.Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Scale: effective scale factors
func (n Node) Scale() (float64, float64) {
	sx, sy := n.ScaleX, n.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func (n Node) ChildCount() int { return len(n.Children) }

func (n Node) FilterCount() int { return len(n.Filters) }
