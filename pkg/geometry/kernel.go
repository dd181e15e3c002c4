package geometry

import "math"

// rayDirection is the fixed direction used by PointInPolygon. The slope
// (tan 22.5°) keeps the ray off axis-aligned edges and diagonals through
// integer grid vertices.
var rayDirection = Point2D{X: 1, Y: 0.41421356237309503}

// Intersection is the result of a segment/segment test
type Intersection struct {
	Hit   bool
	Point Point2D
}

// Length computes the Euclidean length of the vector (x1, y1) -> (x2, y2).
//
//	l = sqrt( (Δx)² + (Δy)² )
func Length(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(math.Pow(x2-x1, 2) + math.Pow(y2-y1, 2))
}

// Orientation returns the sign of the determinant
//
//	| 1    1    1  |
//	| x1   x2   x3 |
//	| y1   y2   y3 |
//
// +1 for a positive turn, -1 for a negative turn and 0 when the points are
// collinear. The comparison against zero is exact, so nearly collinear
// triples may report either sign.
func Orientation(p1, p2, p3 Point2D) int {
	det := p2.X*p3.Y - p3.X*p2.Y -
		p1.X*p3.Y + p3.X*p1.Y +
		p1.X*p2.Y - p2.X*p1.Y

	switch {
	case det < 0:
		return -1
	case det > 0:
		return 1
	default:
		return 0
	}
}

// SegmentIntersect reports whether segment a1-a2 crosses segment b1-b2 and
// where. The linear combination coefficients are found with Cramer's rule:
//
//	λ1 = ((b1-a1) × (b1-b2)) / ((a2-a1) × (b1-b2))
//	λ2 = ((a2-a1) × (b1-a1)) / ((a2-a1) × (b1-b2))
//
// λ1 is the position along A and λ2 the position along B. Both must fall in
// [0, 1]. Parallel segments make the denominator zero; the resulting NaN or
// Inf fails the range check, so they never intersect.
func SegmentIntersect(a1, a2, b1, b2 Point2D) Intersection {
	x31 := b1.X - a1.X
	y31 := b1.Y - a1.Y
	x34 := b1.X - b2.X
	y34 := b1.Y - b2.Y
	aDeltaX := a2.X - a1.X
	aDeltaY := a2.Y - a1.Y

	delta := aDeltaX*y34 - aDeltaY*x34
	lambda1 := (x31*y34 - x34*y31) / delta
	lambda2 := (aDeltaX*y31 - x31*aDeltaY) / delta

	if !(0 <= lambda1 && lambda1 <= 1 && 0 <= lambda2 && lambda2 <= 1) {
		return Intersection{}
	}

	return Intersection{
		Hit: true,
		Point: Point2D{
			X: (1.0-lambda1)*a1.X + lambda1*a2.X,
			Y: (1.0-lambda1)*a1.Y + lambda1*a2.Y,
		},
	}
}

// PointInPolygon tests whether query lies inside the polygon by casting a
// ray from query to a point well outside the polygon and counting how many
// edges it crosses. The last vertex connects back to the first.
//
// A ray that passes exactly through a vertex can count that vertex twice or
// not at all.
func PointInPolygon(vertices []Point2D, query Point2D) bool {
	if len(vertices) < 3 {
		return false
	}
	return PointInPolygonRay(vertices, query, farPoint(vertices, query))
}

// PointInPolygonRay is PointInPolygon with an explicit ray target. far must
// lie outside the polygon.
func PointInPolygonRay(vertices []Point2D, query, far Point2D) bool {
	crossings := 0
	for i := range vertices {
		next := i + 1
		if next >= len(vertices) {
			next = 0
		}
		if SegmentIntersect(vertices[i], vertices[next], query, far).Hit {
			crossings++
		}
	}
	return crossings%2 == 1
}

// farPoint returns a point along rayDirection from query that lies beyond
// twice the extent of the polygon and the query together.
func farPoint(vertices []Point2D, query Point2D) Point2D {
	bbox := BoundsOf(vertices...)
	bbox.Extend(query)
	reach := 2*bbox.Diagonal() + 1
	return query.Add(rayDirection.Mul(reach))
}
