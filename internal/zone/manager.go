package zone

import (
	"errors"
	"sync"

	"designzone/internal/geometry"
	"designzone/internal/scene"

	"go.uber.org/zap"
)

// entry: rendered zone plus its advisory state
type entry struct {
	zone     Zone
	surface  scene.Surface
	handle   *scene.Node
	boundary *scene.Node
	visible  bool
	locked   bool
}

// Manager: zone id -> rendered handle registry. Edits are expected to come
// from one logical caller (the host's UI thread); the mutex only protects
// concurrent readers.
type Manager struct {
	zones  map[string]*entry
	order  []string
	schema *Schema
	style  Style
	exact  bool
	logger *zap.Logger
	mu     sync.RWMutex
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		zones:  make(map[string]*entry),
		schema: NewSchema(),
		style:  DefaultStyle(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// =============================================================================
// Rendering
// =============================================================================

// RenderZone: draws z on s behind all other content and returns its group.
// Rendering an id that already has a handle replaces the old handle. An
// invalid record leaves any existing handle untouched.
func (m *Manager) RenderZone(z Zone, s scene.Surface) (*scene.Node, error) {
	if err := m.schema.Check(z); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	group, boundary, err := m.buildZone(z, s)
	if err != nil {
		return nil, err
	}

	if old, exists := m.zones[z.ID]; exists {
		old.surface.Destroy(old.handle)
		m.logger.Debug("zone handle replaced", zap.String("zone_id", z.ID))
	} else {
		m.order = append(m.order, z.ID)
	}

	visible := z.IsVisible()
	s.SetVisible(group, visible)
	s.Add(group)
	s.MoveToBottom(group)
	s.Redraw()

	m.zones[z.ID] = &entry{
		zone:     z,
		surface:  s,
		handle:   group,
		boundary: boundary,
		visible:  visible,
		locked:   z.Locked,
	}
	return group, nil
}

// RenderAllZones: renders each zone in order. A zone that fails is logged
// and reported in the joined error; the rest are still rendered.
func (m *Manager) RenderAllZones(zones []Zone, s scene.Surface) error {
	var errs []error
	for _, z := range zones {
		if _, err := m.RenderZone(z, s); err != nil {
			m.logger.Warn("zone could not be displayed",
				zap.String("zone_id", z.ID),
				zap.String("zone_type", string(z.Type)),
				zap.Error(err),
			)
			errs = append(errs, &RenderError{ZoneID: z.ID, Err: err})
		}
	}
	return errors.Join(errs...)
}

// RenderFailures: per-zone failures carried by a RenderAllZones error
func RenderFailures(err error) []*RenderError {
	if err == nil {
		return nil
	}

	var out []*RenderError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, RenderFailures(e)...)
		}
		return out
	}

	var re *RenderError
	if errors.As(err, &re) {
		out = append(out, re)
	}
	return out
}

// =============================================================================
// Queries
// =============================================================================

// ZoneHandle: rendered group for zoneID, nil if unknown
func (m *Manager) ZoneHandle(zoneID string) *scene.Node {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.zones[zoneID]; ok {
		return e.handle
	}
	return nil
}

// Zone: configuration the zone was last rendered from
func (m *Manager) Zone(zoneID string) (Zone, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.zones[zoneID]; ok {
		return e.zone, true
	}
	return Zone{}, false
}

// Zones: rendered zone ids in first-render order
func (m *Manager) Zones() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Manager) ZoneCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.zones)
}

// IsPointInZone: native containment test against the zone outline.
// Unknown zones return false.
func (m *Manager) IsPointInZone(zoneID string, x, y float64) bool {
	m.mu.RLock()
	e, ok := m.zones[zoneID]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return e.surface.HitTest(e.boundary, geometry.Point{X: x, Y: y})
}

// ZoneAt: topmost visible zone containing (x, y), "" if none
func (m *Manager) ZoneAt(x, y float64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := geometry.Point{X: x, Y: y}
	found, best := "", -1
	for _, id := range m.order {
		e := m.zones[id]
		if !e.visible || !e.surface.HitTest(e.boundary, p) {
			continue
		}
		if idx := e.surface.Index(e.handle); idx > best {
			found, best = id, idx
		}
	}
	return found
}

// =============================================================================
// Advisory state
// =============================================================================

// SetZoneVisibility: shows or hides the zone and repaints its surface
func (m *Manager) SetZoneVisibility(zoneID string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.zones[zoneID]
	if !ok {
		return
	}
	e.visible = visible
	e.surface.SetVisible(e.handle, visible)
	e.surface.Redraw()
}

// IsZoneVisible: current visibility, false for unknown zones
func (m *Manager) IsZoneVisible(zoneID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.zones[zoneID]
	return ok && e.visible
}

// SetZoneLocked: advisory lock flag for the interaction layer
func (m *Manager) SetZoneLocked(zoneID string, locked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.zones[zoneID]; ok {
		e.locked = locked
	}
}

func (m *Manager) IsZoneLocked(zoneID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.zones[zoneID]
	return ok && e.locked
}

// =============================================================================
// Removal
// =============================================================================

// RemoveZone: destroys the zone's handle and forgets it
func (m *Manager) RemoveZone(zoneID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(zoneID)
}

// ClearZones: destroys every zone handle
func (m *Manager) ClearZones() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range append([]string(nil), m.order...) {
		m.remove(id)
	}
}

// remove: caller holds m.mu
func (m *Manager) remove(zoneID string) {
	e, ok := m.zones[zoneID]
	if !ok {
		return
	}

	e.surface.Destroy(e.handle)
	e.surface.Redraw()
	delete(m.zones, zoneID)
	for i, id := range m.order {
		if id == zoneID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.logger.Debug("zone removed", zap.String("zone_id", zoneID))
}
