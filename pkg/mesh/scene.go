package mesh

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

var (
	ErrAlreadyPinned = errors.New("polygon is already pinned")
	ErrNotPinned     = errors.New("polygon is not pinned")
	ErrSelfPin       = errors.New("polygon cannot be pinned to itself")
	ErrCycle         = errors.New("pin would create a cycle")
	ErrPinned        = errors.New("pinned polygons follow their parent")
	ErrUnknown       = errors.New("polygon is not part of the scene")
)

// Pin binds a child polygon to a parent at a point. The point is stored in
// the parent's model space so it moves with the parent.
type Pin struct {
	Parent *Polygon
	Child  *Polygon
	local  geometry.Point2D
}

// Position returns the pin location in world space
func (p *Pin) Position() geometry.Point2D {
	return p.Parent.World().Apply(p.local)
}

// Scene holds polygons in drawing order, the last one on top
type Scene struct {
	polygons []*Polygon
	pins     []*Pin
	nextID   int
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a polygon on top of the scene and assigns its ID
func (s *Scene) Add(p *Polygon) *Polygon {
	s.nextID++
	p.id = s.nextID
	s.polygons = append(s.polygons, p)
	return p
}

// Remove deletes a polygon. Its own pin and the pins of its children are
// released first, leaving every other polygon where it is on screen.
func (s *Scene) Remove(p *Polygon) error {
	i := slices.Index(s.polygons, p)
	if i < 0 {
		return ErrUnknown
	}

	for _, pin := range slices.Clone(s.pins) {
		if pin.Parent == p || pin.Child == p {
			if err := s.Unpin(pin.Child); err != nil {
				return err
			}
		}
	}
	s.polygons = slices.Delete(s.polygons, i, i+1)
	return nil
}

// Polygons returns the polygons in drawing order
func (s *Scene) Polygons() []*Polygon {
	return slices.Clone(s.polygons)
}

// Len returns the number of polygons
func (s *Scene) Len() int {
	return len(s.polygons)
}

// PolygonsAt returns every polygon containing point, topmost first
func (s *Scene) PolygonsAt(point geometry.Point2D) []*Polygon {
	var out []*Polygon
	for i := len(s.polygons) - 1; i >= 0; i-- {
		if s.polygons[i].Contains(point) {
			out = append(out, s.polygons[i])
		}
	}
	return out
}

// PolygonAt returns the topmost polygon containing point, or nil
func (s *Scene) PolygonAt(point geometry.Point2D) *Polygon {
	for i := len(s.polygons) - 1; i >= 0; i-- {
		if s.polygons[i].Contains(point) {
			return s.polygons[i]
		}
	}
	return nil
}

// Translate moves an unpinned polygon by d. Pinned children move along.
func (s *Scene) Translate(p *Polygon, d geometry.Point2D) error {
	if p.parent != nil {
		return ErrPinned
	}
	p.local = Translation(d).Mul(p.local)
	return nil
}

// Pin binds child to parent at position, a world space point. The child
// keeps its current world placement and follows the parent afterwards.
func (s *Scene) Pin(position geometry.Point2D, parent, child *Polygon) (*Pin, error) {
	switch {
	case parent == child:
		return nil, ErrSelfPin
	case child.parent != nil:
		return nil, ErrAlreadyPinned
	}
	for ancestor := parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return nil, ErrCycle
		}
	}

	parentInv, err := parent.World().Inverse()
	if err != nil {
		return nil, fmt.Errorf("failed to pin polygon %d: %w", child.id, err)
	}

	pin := &Pin{Parent: parent, Child: child, local: parentInv.Apply(position)}
	child.local = parentInv.Mul(child.World())
	child.parent = parent
	child.pin = pin
	s.pins = append(s.pins, pin)
	return pin, nil
}

// Unpin releases child from its parent, keeping its world placement
func (s *Scene) Unpin(child *Polygon) error {
	if child.parent == nil {
		return ErrNotPinned
	}

	child.local = child.World()
	child.parent = nil
	s.pins = slices.DeleteFunc(s.pins, func(p *Pin) bool { return p == child.pin })
	child.pin = nil
	return nil
}

// RotateAroundPin turns a pinned polygon by rad around its pin
func (s *Scene) RotateAroundPin(child *Polygon, rad float64) error {
	if child.pin == nil {
		return ErrNotPinned
	}
	child.local = RotationAbout(child.pin.local, rad).Mul(child.local)
	return nil
}

// Pins returns the pins in creation order
func (s *Scene) Pins() []*Pin {
	return slices.Clone(s.pins)
}
