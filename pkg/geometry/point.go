package geometry

import "math"

// Point2D represents a 2D point or vector in working space
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new 2D point
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point2D) Mul(scalar float64) Point2D {
	return Point2D{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of two vectors
func (p Point2D) Dot(other Point2D) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of the 3D cross product
func (p Point2D) Cross(other Point2D) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Length returns the magnitude of the vector
func (p Point2D) Length() float64 {
	return Length(0, 0, p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point2D) Distance(other Point2D) float64 {
	return Length(p.X, p.Y, other.X, other.Y)
}

// Min returns a point with the minimum components of two points
func (p Point2D) Min(other Point2D) Point2D {
	return Point2D{X: math.Min(p.X, other.X), Y: math.Min(p.Y, other.Y)}
}

// Max returns a point with the maximum components of two points
func (p Point2D) Max(other Point2D) Point2D {
	return Point2D{X: math.Max(p.X, other.X), Y: math.Max(p.Y, other.Y)}
}
