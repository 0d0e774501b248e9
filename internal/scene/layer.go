package scene

import (
	"sync"

	"designzone/internal/design"
	"designzone/internal/geometry"
)

// Layer: in-memory retained-mode surface. Top-level nodes are kept in paint
// order, bottom first; every attached node is indexed by id.
type Layer struct {
	nodes   []*Node
	index   map[string]*Node
	redraws int
	mu      sync.RWMutex
}

var _ Surface = (*Layer)(nil)

func NewLayer() *Layer {
	return &Layer{
		index: make(map[string]*Node),
	}
}

// CreateShape: builds a detached boundary/content shape
func (l *Layer) CreateShape(kind Kind, geom Geometry, style Style) (*Node, error) {
	return newShape(kind, geom, style)
}

// CreateText: builds a detached text node
func (l *Layer) CreateText(text string, at geometry.Point, style Style) *Node {
	return newText(text, at, style)
}

// Group: builds a detached group owning children
func (l *Layer) Group(name string, children ...*Node) *Node {
	g := newNode(KindGroup, Geometry{}, Style{})
	g.Name = name
	for _, c := range children {
		g.Append(c)
	}
	return g
}

// Add: attaches n on top of the paint order
func (l *Layer) Add(n *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n.parent != nil {
		n.parent.removeChild(n)
	}
	l.detach(n)
	l.nodes = append(l.nodes, n)
	l.register(n)
}

// MoveToBottom: moves n behind its siblings
func (l *Layer) MoveToBottom(n *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p := n.parent; p != nil {
		p.removeChild(n)
		n.parent = p
		p.children = append([]*Node{n}, p.children...)
		return
	}

	if !l.detach(n) {
		return
	}
	l.nodes = append([]*Node{n}, l.nodes...)
}

// Index: position of n among its siblings, -1 if not attached
func (l *Layer) Index(n *Node) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	siblings := l.nodes
	if n.parent != nil {
		siblings = n.parent.children
	}
	for i, s := range siblings {
		if s == n {
			return i
		}
	}
	return -1
}

// HitTest: native containment of p in n's shape
func (l *Layer) HitTest(n *Node, p geometry.Point) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n == nil || n.destroyed {
		return false
	}
	return n.contains(p)
}

// SetVisible: toggles n's visibility (repaint is up to the caller)
func (l *Layer) SetVisible(n *Node, visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n.Visible = visible
}

// Redraw: schedules a repaint of the layer
func (l *Layer) Redraw() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.redraws++
}

// Destroy: detaches n and releases it and all of its children
func (l *Layer) Destroy(n *Node) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n.parent != nil {
		n.parent.removeChild(n)
	} else {
		l.detach(n)
	}
	l.release(n)
}

// RedrawCount: number of repaints requested so far
func (l *Layer) RedrawCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.redraws
}

// Find: attached node by id
func (l *Layer) Find(id string) *Node {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.index[id]
}

// Nodes: snapshot of top-level nodes in paint order
func (l *Layer) Nodes() []*Node {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// NodeCount: number of attached nodes, children included
func (l *Layer) NodeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.index)
}

// DesignNodes: user content flattened depth-first in paint order, system
// nodes (zone outlines and labels) excluded
func (l *Layer) DesignNodes() []design.Node {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []design.Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.System {
			return
		}
		out = append(out, n.Design())
		for _, c := range n.children {
			walk(c)
		}
	}
	for _, n := range l.nodes {
		walk(n)
	}
	return out
}

// detach removes n from the top-level list. Caller holds the lock.
func (l *Layer) detach(n *Node) bool {
	for i, v := range l.nodes {
		if v == n {
			l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Layer) register(n *Node) {
	l.index[n.ID] = n
	for _, c := range n.children {
		l.register(c)
	}
}

func (l *Layer) release(n *Node) {
	delete(l.index, n.ID)
	for _, c := range n.children {
		l.release(c)
		c.parent = nil
	}
	n.children = nil
	n.destroyed = true
}
