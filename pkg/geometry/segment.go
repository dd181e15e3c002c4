package geometry

import "math"

// Segment is a directed line segment between two endpoints. The cached
// length and deltas are recomputed on every mutation; endpoints can only be
// changed through the methods below.
type Segment struct {
	start  Point2D
	end    Point2D
	length float64
	deltaX float64
	deltaY float64
}

// NewSegment creates a segment from start to end
func NewSegment(start, end Point2D) *Segment {
	s := &Segment{start: start, end: end}
	s.calculateParameters()
	return s
}

// calculateParameters refreshes the derived values from the endpoints
func (s *Segment) calculateParameters() {
	s.length = Length(s.start.X, s.start.Y, s.end.X, s.end.Y)
	s.deltaX = s.end.X - s.start.X
	s.deltaY = s.end.Y - s.start.Y
}

// Start returns the first endpoint
func (s *Segment) Start() Point2D { return s.start }

// End returns the second endpoint
func (s *Segment) End() Point2D { return s.end }

// Length returns the cached segment length
func (s *Segment) Length() float64 { return s.length }

// DeltaX returns end.X - start.X
func (s *Segment) DeltaX() float64 { return s.deltaX }

// DeltaY returns end.Y - start.Y
func (s *Segment) DeltaY() float64 { return s.deltaY }

// Bounds returns the axis-aligned bounding box of the segment
func (s *Segment) Bounds() BoundingBox {
	return BoundsOf(s.start, s.end)
}

// SetStart moves the first endpoint
func (s *Segment) SetStart(p Point2D) {
	s.start = p
	s.calculateParameters()
}

// SetEnd moves the second endpoint
func (s *Segment) SetEnd(p Point2D) {
	s.end = p
	s.calculateParameters()
}

// Translate moves both endpoints by (dx, dy)
func (s *Segment) Translate(dx, dy float64) {
	s.start.X += dx
	s.start.Y += dy
	s.end.X += dx
	s.end.Y += dy
	s.calculateParameters()
}

// Classify returns the region of the segment that p is within maxDistance
// of. Points outside the bounding box grown by maxDistance are rejected
// first. Endpoints win over the body, and the end point wins over the start
// point, so a drag handle is always picked when one is in reach.
func (s *Segment) Classify(p Point2D, maxDistance float64) Region {
	if !s.Bounds().Expand(maxDistance).Contains(p) {
		return RegionNone
	}

	if s.end.Distance(p) < maxDistance {
		return RegionEnd
	}
	if s.start.Distance(p) < maxDistance {
		return RegionStart
	}

	// Distance to the infinite line, then check that the projection of p
	// lands between the endpoints.
	dist := math.Abs(s.deltaY*p.X-s.deltaX*p.Y+s.end.X*s.start.Y-s.end.Y*s.start.X) / s.length
	dot := s.deltaX*(p.X-s.start.X) + s.deltaY*(p.Y-s.start.Y)
	if dist < maxDistance && dot >= 0 && dot <= s.length*s.length {
		return RegionBody
	}

	return RegionNone
}

// Intersect tests this segment against other. Both segments are read from
// their current endpoints, never from cached deltas.
func (s *Segment) Intersect(other *Segment) Intersection {
	return SegmentIntersect(s.start, s.end, other.start, other.end)
}
