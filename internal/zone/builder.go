package zone

import (
	"fmt"
	"math"

	"designzone/internal/geometry"
	"designzone/internal/scene"
)

// labelGap: space between a zone label and the top of the zone box
const labelGap = 4.0

// Style: how zone outlines and labels are painted. An empty Stroke gives
// every zone its own color (see ZoneColor).
type Style struct {
	Stroke        string
	StrokeWidth   float64
	Dash          []float64
	LabelFontSize float64
	LabelFill     string
}

func DefaultStyle() Style {
	return Style{
		StrokeWidth:   2,
		Dash:          []float64{5, 5},
		LabelFontSize: 12,
		LabelFill:     "#333333",
	}
}

// boundaryGeometry: outline shape for z, per zone type
//
//	rect     box at (x, y), width × height
//	circle   centered in the box, radius or min(width, height)/2
//	ellipse  centered in the box, radiusX/radiusY or half the box
//	polygon  closed path through points
func boundaryGeometry(z Zone) (scene.Kind, scene.Geometry, error) {
	s := z.Shape
	center := geometry.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}.Center()

	switch z.Type {
	case TypeRect:
		return scene.KindRect, scene.Geometry{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}, nil

	case TypeCircle:
		radius := math.Min(s.Width, s.Height) / 2
		if s.Radius != nil {
			radius = *s.Radius
		}
		return scene.KindCircle, scene.Geometry{X: center.X, Y: center.Y, Radius: radius}, nil

	case TypeEllipse:
		rx, ry := s.Width/2, s.Height/2
		if s.RadiusX != nil {
			rx = *s.RadiusX
		}
		if s.RadiusY != nil {
			ry = *s.RadiusY
		}
		return scene.KindEllipse, scene.Geometry{X: center.X, Y: center.Y, RadiusX: rx, RadiusY: ry}, nil

	case TypePolygon:
		if n := len(s.Points); n < minPolygonValues || n%2 != 0 {
			return "", scene.Geometry{}, fmt.Errorf("%w: polygon needs at least 3 points, got %d values", ErrInvalidZoneGeometry, n)
		}
		return scene.KindPolygon, scene.Geometry{Points: append([]float64(nil), s.Points...)}, nil

	default:
		return "", scene.Geometry{}, fmt.Errorf("%w: %q", ErrUnknownZoneType, z.Type)
	}
}

// labelPosition: just above the top-left corner of the zone box
func labelPosition(box geometry.Rect, fontSize float64) geometry.Point {
	return geometry.Point{X: box.X, Y: box.Y - fontSize - labelGap}
}

// buildZone creates the outline + label group for z on s. Nothing is
// attached to s yet.
func (m *Manager) buildZone(z Zone, s scene.Surface) (group, boundary *scene.Node, err error) {
	kind, geom, err := boundaryGeometry(z)
	if err != nil {
		return nil, nil, err
	}

	boundary, err = s.CreateShape(kind, geom, scene.Style{
		Stroke:      m.strokeFor(z.ID),
		StrokeWidth: m.style.StrokeWidth,
		Dash:        append([]float64(nil), m.style.Dash...),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidZoneGeometry, err)
	}
	boundary.Name = "zone-boundary"
	boundary.System = true

	label := s.CreateText(m.schema.Label(z.Name), labelPosition(boundary.ClientRect(), m.style.LabelFontSize), scene.Style{
		Fill:     m.style.LabelFill,
		FontSize: m.style.LabelFontSize,
	})
	label.Name = "zone-label"
	label.System = true

	group = s.Group(z.ID, boundary, label)
	group.System = true
	return group, boundary, nil
}

// strokeFor: configured stroke, else the zone id's own color
func (m *Manager) strokeFor(zoneID string) string {
	if m.style.Stroke != "" {
		return m.style.Stroke
	}
	return ZoneColor(zoneID)
}
