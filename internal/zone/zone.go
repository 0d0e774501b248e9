// Package zone manages the named, shaped regions of a design surface: it
// renders their outlines, answers hit tests and keeps placed content inside
// its assigned zone.
package zone

// Type of zone outline
type Type string

const (
	TypeRect    Type = "rect"
	TypeCircle  Type = "circle"
	TypeEllipse Type = "ellipse"
	TypePolygon Type = "polygon"
)

// =============================================================================
// Configuration records
// =============================================================================

// Shape: zone geometry. Rect, circle and ellipse zones use the x, y, width,
// height box; polygon zones use the flat Points list [x0, y0, x1, y1, ...].
type Shape struct {
	X       float64   `json:"x" yaml:"x"`
	Y       float64   `json:"y" yaml:"y"`
	Width   float64   `json:"width" yaml:"width" validate:"min=0"`
	Height  float64   `json:"height" yaml:"height" validate:"min=0"`
	Radius  *float64  `json:"radius,omitempty" yaml:"radius,omitempty" validate:"omitempty,min=0"`
	RadiusX *float64  `json:"radiusX,omitempty" yaml:"radiusX,omitempty" validate:"omitempty,min=0"`
	RadiusY *float64  `json:"radiusY,omitempty" yaml:"radiusY,omitempty" validate:"omitempty,min=0"`
	Points  []float64 `json:"points,omitempty" yaml:"points,omitempty"`
}

// Zone is a configuration record owned by the host application.
// Visible defaults to true when unset.
type Zone struct {
	ID      string `json:"id" yaml:"id" validate:"required,max=200"`
	Name    string `json:"name" yaml:"name" validate:"max=200"`
	Type    Type   `json:"type" yaml:"type" validate:"required,oneof=rect circle ellipse polygon"`
	Shape   Shape  `json:"shape" yaml:"shape"`
	Visible *bool  `json:"visible,omitempty" yaml:"visible,omitempty"`
	Locked  bool   `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// IsVisible: configured visibility, true if unset
func (z Zone) IsVisible() bool {
	return z.Visible == nil || *z.Visible
}

// Bool: helper for optional flags in zone literals
func Bool(v bool) *bool { return &v }

// Float: helper for optional radii in zone literals
func Float(v float64) *float64 { return &v }
