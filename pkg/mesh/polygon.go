// Package mesh turns closed chains into triangulated polygons and keeps the
// pin bindings between them.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gosketch/pkg/chain"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// ErrChainOpen is returned when building a polygon from an open chain
var ErrChainOpen = errors.New("chain is not closed")

// Polygon is a triangulated outline placed in the scene by a transform.
// Pinned polygons are placed relative to their parent.
type Polygon struct {
	id        int
	vertices  []geometry.Point2D
	triangles [][3]int
	local     Transform
	parent    *Polygon
	pin       *Pin
}

// NewPolygon creates a polygon from its outline and triangle indices. The
// polygon starts at the identity transform.
func NewPolygon(vertices []geometry.Point2D, triangles [][3]int) *Polygon {
	p := &Polygon{
		vertices:  make([]geometry.Point2D, len(vertices)),
		triangles: make([][3]int, len(triangles)),
		local:     Identity(),
	}
	copy(p.vertices, vertices)
	copy(p.triangles, triangles)
	return p
}

// FromChain triangulates a closed chain into a polygon
func FromChain(c *chain.Chain, t Triangulator) (*Polygon, error) {
	outline, err := c.Polygon()
	if err != nil {
		return nil, ErrChainOpen
	}

	triangles, err := t.Triangulate(outline)
	if err != nil {
		return nil, fmt.Errorf("failed to triangulate chain: %w", err)
	}
	return NewPolygon(outline, triangles), nil
}

// ID returns the scene identifier, 0 until added to a scene
func (p *Polygon) ID() int {
	return p.id
}

// Vertices returns a copy of the outline in model space
func (p *Polygon) Vertices() []geometry.Point2D {
	out := make([]geometry.Point2D, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Triangles returns a copy of the triangle indices
func (p *Polygon) Triangles() [][3]int {
	out := make([][3]int, len(p.triangles))
	copy(out, p.triangles)
	return out
}

// Pinned reports whether the polygon is pinned to a parent
func (p *Polygon) Pinned() bool {
	return p.parent != nil
}

// Parent returns the polygon this one is pinned to, or nil
func (p *Polygon) Parent() *Polygon {
	return p.parent
}

// Pin returns the pin holding this polygon, or nil
func (p *Polygon) Pin() *Pin {
	return p.pin
}

// World returns the model to world transform
func (p *Polygon) World() Transform {
	if p.parent == nil {
		return p.local
	}
	return p.parent.World().Mul(p.local)
}

// WorldVertices returns the outline in world space
func (p *Polygon) WorldVertices() []geometry.Point2D {
	return p.World().ApplyAll(p.vertices)
}

// WorldTriangles returns the triangles in world space
func (p *Polygon) WorldTriangles() []geometry.Triangle {
	world := p.WorldVertices()
	out := make([]geometry.Triangle, 0, len(p.triangles))
	for _, t := range p.triangles {
		out = append(out, geometry.NewTriangle(world[t[0]], world[t[1]], world[t[2]]))
	}
	return out
}

// Contains reports whether the world space point lies inside the polygon
func (p *Polygon) Contains(point geometry.Point2D) bool {
	return geometry.PointInPolygon(p.WorldVertices(), point)
}

// Area returns the total triangle area
func (p *Polygon) Area() float64 {
	area := 0.0
	for _, t := range p.triangles {
		area += geometry.NewTriangle(p.vertices[t[0]], p.vertices[t[1]], p.vertices[t[2]]).Area()
	}
	return area
}

// Bounds returns the world space bounding box
func (p *Polygon) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(p.WorldVertices()...)
}

func (p *Polygon) String() string {
	return fmt.Sprintf("polygon %d (%d vertices, area %.2f, rotation %.1f°)",
		p.id, len(p.vertices), p.Area(), p.World().Angle()*180/math.Pi)
}
