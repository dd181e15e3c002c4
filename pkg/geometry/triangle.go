package geometry

import "math"

// Triangle represents a triangle in the plane
type Triangle struct {
	A, B, C Point2D
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Point2D) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// SignedArea returns the area, positive when A, B, C turn counter-clockwise
// in a y-up frame
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2.0
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.A.Distance(t.B),
		t.B.Distance(t.C),
		t.C.Distance(t.A),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Point2D {
	return Point2D{
		X: (t.A.X + t.B.X + t.C.X) / 3.0,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3.0,
	}
}

// Contains reports whether p lies inside the triangle or on its border
func (t Triangle) Contains(p Point2D) bool {
	o1 := Orientation(t.A, t.B, p)
	o2 := Orientation(t.B, t.C, p)
	o3 := Orientation(t.C, t.A, p)

	hasNeg := o1 < 0 || o2 < 0 || o3 < 0
	hasPos := o1 > 0 || o2 > 0 || o3 > 0
	return !(hasNeg && hasPos)
}
