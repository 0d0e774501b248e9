package scene

import (
	"testing"

	"designzone/internal/design"
	"designzone/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShape(t *testing.T) {
	l := NewLayer()

	tests := []struct {
		name    string
		kind    Kind
		geom    Geometry
		wantErr bool
	}{
		{name: "rect", kind: KindRect, geom: Geometry{X: 0, Y: 0, Width: 10, Height: 10}},
		{name: "circle", kind: KindCircle, geom: Geometry{X: 5, Y: 5, Radius: 5}},
		{name: "ellipse", kind: KindEllipse, geom: Geometry{RadiusX: 5, RadiusY: 3}},
		{name: "triangle", kind: KindPolygon, geom: Geometry{Points: []float64{0, 0, 10, 0, 0, 10}}},
		{name: "polygon with two points", kind: KindPolygon, geom: Geometry{Points: []float64{0, 0, 10, 0}}, wantErr: true},
		{name: "polygon odd values", kind: KindPolygon, geom: Geometry{Points: []float64{0, 0, 10, 0, 5, 5, 1}}, wantErr: true},
		{name: "negative radius", kind: KindCircle, geom: Geometry{Radius: -1}, wantErr: true},
		{name: "unknown kind", kind: Kind("star"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := l.CreateShape(tt.kind, tt.geom, Style{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, n.Kind)
			assert.NotEmpty(t, n.ID)
			assert.True(t, n.Visible)
		})
	}
}

func TestLayerPaintOrder(t *testing.T) {
	l := NewLayer()
	a := NewContent(KindRect, 0, 0, 10, 10)
	b := NewContent(KindRect, 0, 0, 10, 10)
	c := NewContent(KindRect, 0, 0, 10, 10)

	l.Add(a)
	l.Add(b)
	l.Add(c)
	assert.Equal(t, 2, l.Index(c))

	l.MoveToBottom(c)
	assert.Equal(t, 0, l.Index(c))
	assert.Equal(t, 1, l.Index(a))
	assert.Equal(t, []*Node{c, a, b}, l.Nodes())

	l.Add(a)
	assert.Equal(t, []*Node{c, b, a}, l.Nodes(), "re-adding moves to top without duplicating")
	assert.Equal(t, -1, l.Index(NewContent(KindRect, 0, 0, 1, 1)))
}

func TestLayerDestroyGroup(t *testing.T) {
	l := NewLayer()
	shape, err := l.CreateShape(KindRect, Geometry{Width: 10, Height: 10}, Style{})
	require.NoError(t, err)
	label := l.CreateText("Front", geometry.Point{X: 0, Y: -16}, Style{FontSize: 12})
	g := l.Group("zone", shape, label)

	l.Add(g)
	assert.Equal(t, 3, l.NodeCount())
	assert.Same(t, shape, l.Find(shape.ID))
	assert.Same(t, g, shape.Parent())

	l.Destroy(g)
	assert.Equal(t, 0, l.NodeCount())
	assert.Empty(t, l.Nodes())
	assert.True(t, g.Destroyed())
	assert.True(t, shape.Destroyed())
	assert.Nil(t, shape.Parent())
	assert.False(t, l.HitTest(g, geometry.Point{X: 5, Y: 5}))
}

func TestHitTest(t *testing.T) {
	l := NewLayer()

	rect, _ := l.CreateShape(KindRect, Geometry{X: 10, Y: 10, Width: 100, Height: 50}, Style{})
	circle, _ := l.CreateShape(KindCircle, Geometry{X: 50, Y: 50, Radius: 20}, Style{})
	ellipse, _ := l.CreateShape(KindEllipse, Geometry{X: 50, Y: 50, RadiusX: 40, RadiusY: 10}, Style{})
	poly, _ := l.CreateShape(KindPolygon, Geometry{Points: []float64{0, 0, 100, 0, 0, 100}}, Style{})

	assert.True(t, l.HitTest(rect, geometry.Point{X: 60, Y: 35}))
	assert.False(t, l.HitTest(rect, geometry.Point{X: 111, Y: 35}))
	assert.True(t, l.HitTest(circle, geometry.Point{X: 65, Y: 50}))
	assert.False(t, l.HitTest(circle, geometry.Point{X: 65, Y: 65}))
	assert.True(t, l.HitTest(ellipse, geometry.Point{X: 85, Y: 50}))
	assert.False(t, l.HitTest(ellipse, geometry.Point{X: 50, Y: 62}))
	assert.True(t, l.HitTest(poly, geometry.Point{X: 20, Y: 20}))
	assert.False(t, l.HitTest(poly, geometry.Point{X: 70, Y: 70}))

	g := l.Group("g", rect, circle)
	assert.True(t, l.HitTest(g, geometry.Point{X: 60, Y: 35}))
	assert.False(t, l.HitTest(g, geometry.Point{X: 500, Y: 500}))
	assert.False(t, l.HitTest(nil, geometry.Point{}))
}

func TestHitTestRotated(t *testing.T) {
	l := NewLayer()
	rect := NewContent(KindRect, 100, 100, 40, 10)
	rect.Rotation = 90

	// rotated about its origin, the rect now spans x 90..100, y 100..140
	assert.True(t, l.HitTest(rect, geometry.Point{X: 95, Y: 130}))
	assert.False(t, l.HitTest(rect, geometry.Point{X: 120, Y: 105}))
}

func TestClientRect(t *testing.T) {
	circle := newNode(KindCircle, Geometry{X: 50, Y: 50, Radius: 20}, Style{})
	assert.Equal(t, geometry.Rect{X: 30, Y: 30, Width: 40, Height: 40}, circle.ClientRect())

	ellipse := newNode(KindEllipse, Geometry{X: 50, Y: 50, RadiusX: 40, RadiusY: 10}, Style{})
	assert.Equal(t, geometry.Rect{X: 10, Y: 40, Width: 80, Height: 20}, ellipse.ClientRect())

	poly := newNode(KindPolygon, Geometry{Points: []float64{10, 10, 60, 20, 30, 70}}, Style{})
	assert.Equal(t, geometry.Rect{X: 10, Y: 10, Width: 50, Height: 60}, poly.ClientRect())

	img := NewContent(KindImage, 5, 5, 10, 20)
	img.ScaleX = 2
	assert.Equal(t, geometry.Rect{X: 5, Y: 5, Width: 20, Height: 20}, img.ClientRect())

	g := newNode(KindGroup, Geometry{}, Style{})
	g.Append(circle)
	g.Append(img)
	assert.Equal(t, geometry.Rect{X: 5, Y: 5, Width: 65, Height: 65}, g.ClientRect())
}

func TestSetPositionMovesChildren(t *testing.T) {
	g := newNode(KindGroup, Geometry{}, Style{})
	child := NewContent(KindRect, 10, 10, 5, 5)
	g.Append(child)

	g.SetPosition(geometry.Point{X: 100, Y: 50})
	assert.Equal(t, geometry.Point{X: 100, Y: 50}, g.Position())
	assert.Equal(t, geometry.Point{X: 110, Y: 60}, child.Position())
}

func TestVisibilityAndRedraw(t *testing.T) {
	l := NewLayer()
	n := NewContent(KindRect, 0, 0, 1, 1)
	l.Add(n)

	l.SetVisible(n, false)
	assert.False(t, n.Visible)
	assert.Equal(t, 0, l.RedrawCount())

	l.Redraw()
	l.Redraw()
	assert.Equal(t, 2, l.RedrawCount())
}

func TestDesignNodes(t *testing.T) {
	l := NewLayer()

	outline, _ := l.CreateShape(KindRect, Geometry{Width: 100, Height: 100}, Style{})
	zone := l.Group("zone", outline)
	zone.System = true
	l.Add(zone)

	text := NewContent(KindText, 10, 10, 50, 12)
	text.Text = "hello"
	img := NewContent(KindImage, 20, 20, 300, 200)
	img.Filters = []string{"blur", "grayscale"}
	img.Rotation = 15
	group := l.Group("logo", NewContent(KindRect, 0, 0, 5, 5))
	l.Add(text)
	l.Add(img)
	l.Add(group)

	nodes := l.DesignNodes()
	require.Len(t, nodes, 4)

	assert.Equal(t, design.KindText, nodes[0].Kind)
	assert.Equal(t, "hello", nodes[0].Text)
	assert.Equal(t, design.KindImage, nodes[1].Kind)
	assert.Equal(t, 300.0, nodes[1].Width)
	assert.Equal(t, 2, nodes[1].FilterCount())
	assert.Equal(t, 15.0, nodes[1].Rotation)
	assert.Equal(t, design.KindGroup, nodes[2].Kind)
	assert.Equal(t, 1, nodes[2].ChildCount())
	assert.Equal(t, design.KindShape, nodes[3].Kind)
}

func TestFromDesign(t *testing.T) {
	d := design.Node{
		ID:   "logo",
		Kind: design.KindGroup,
		X:    10, Y: 10, Width: 40, Height: 20,
		Children: []design.Node{
			{ID: "caption", Kind: design.KindText, X: 10, Y: 10, Width: 40, Height: 12, Text: "Hi"},
			{Kind: design.KindShape, X: 10, Y: 22, Width: 5, Height: 5},
		},
	}

	n := FromDesign(d)
	assert.Equal(t, "logo", n.ID)
	assert.Equal(t, KindGroup, n.Kind)
	assert.Equal(t, 1.0, n.ScaleX)
	require.Len(t, n.Children(), 2)
	assert.Equal(t, "caption", n.Children()[0].ID)
	assert.Equal(t, KindRect, n.Children()[1].Kind)
	assert.NotEmpty(t, n.Children()[1].ID)

	l := NewLayer()
	l.Add(n)
	assert.Same(t, n.Children()[0], l.Find("caption"))

	nodes := l.DesignNodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "Hi", nodes[1].Text)
	assert.Equal(t, design.KindShape, nodes[2].Kind)
}
