package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Point2D
	Max Point2D
}

// NewBoundingBox creates an empty bounding box that any point extends
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point2D{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point2D{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box of the given points
func BoundsOf(points ...Point2D) BoundingBox {
	b := NewBoundingBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Point2D) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether no point has been added yet
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Point2D {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Point2D {
	return Point2D{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Expand returns the box grown by margin on every side
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		Min: Point2D{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Point2D{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// Contains returns true if the point is inside or on the border of the box
func (b BoundingBox) Contains(p Point2D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
