// Package stl exports polygon scenes as flat STL meshes and reads them back
package stl

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Vec3 is a point or normal in model space
type Vec3 struct {
	X, Y, Z float64
}

// Facet is one STL triangle
type Facet struct {
	Normal     Vec3
	V1, V2, V3 Vec3
}

// Footprint projects the facet onto the XY plane
func (f Facet) Footprint() geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewPoint2D(f.V1.X, f.V1.Y),
		geometry.NewPoint2D(f.V2.X, f.V2.Y),
		geometry.NewPoint2D(f.V3.X, f.V3.Y),
	)
}

// Model represents a complete STL model
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

// FromTriangles lifts 2D triangles into the z = 0 plane. Every facet is
// wound counter-clockwise so its normal is +Z.
func FromTriangles(name string, triangles []geometry.Triangle) *Model {
	model := NewModel(name)
	up := Vec3{Z: 1}
	for _, t := range triangles {
		a, b, c := t.A, t.B, t.C
		if t.SignedArea() < 0 {
			b, c = c, b
		}
		model.AddFacet(Facet{
			Normal: up,
			V1:     Vec3{X: a.X, Y: a.Y},
			V2:     Vec3{X: b.X, Y: b.Y},
			V3:     Vec3{X: c.X, Y: c.Y},
		})
	}
	return model
}

// AddFacet adds a facet to the model
func (m *Model) AddFacet(f Facet) {
	m.Facets = append(m.Facets, f)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// Bounds returns the XY bounding box of the model
func (m *Model) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, f := range m.Facets {
		t := f.Footprint()
		bbox.Extend(t.A)
		bbox.Extend(t.B)
		bbox.Extend(t.C)
	}
	return bbox
}

// FootprintArea returns the total area of the facets projected onto XY
func (m *Model) FootprintArea() float64 {
	total := 0.0
	for _, f := range m.Facets {
		total += f.Footprint().Area()
	}
	return total
}
