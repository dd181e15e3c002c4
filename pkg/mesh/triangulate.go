package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

var (
	// ErrDegenerate is returned for outlines with fewer than three vertices
	// or without area
	ErrDegenerate = errors.New("polygon is degenerate")
	// ErrNotSimple is returned for self-intersecting outlines
	ErrNotSimple = errors.New("polygon is not simple")
)

// Triangulator splits a closed outline into triangles. The result holds
// indices into vertices.
type Triangulator interface {
	Triangulate(vertices []geometry.Point2D) ([][3]int, error)
}

// EarClipper triangulates simple polygons by repeatedly cutting off ears
type EarClipper struct{}

// Triangulate implements Triangulator
func (EarClipper) Triangulate(vertices []geometry.Point2D) ([][3]int, error) {
	n := len(vertices)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrDegenerate, n)
	}

	if i, j, ok := findCrossing(vertices); ok {
		return nil, fmt.Errorf("%w: edge %d crosses edge %d", ErrNotSimple, i, j)
	}

	area := signedArea(vertices)
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}

	winding := 1
	if area < 0 {
		winding = -1
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	triangles := make([][3]int, 0, n-2)
	for len(remaining) > 3 {
		ear := findEar(vertices, remaining, winding)
		if ear < 0 {
			// Collinear vertices never form an ear; drop one and retry
			ear = findCollinear(vertices, remaining)
			if ear < 0 {
				return nil, fmt.Errorf("%w: no ear found with %d vertices left", ErrNotSimple, len(remaining))
			}
			remaining = append(remaining[:ear], remaining[ear+1:]...)
			continue
		}

		prev, cur, next := neighbours(remaining, ear)
		triangles = append(triangles, [3]int{prev, cur, next})
		remaining = append(remaining[:ear], remaining[ear+1:]...)
	}

	if geometry.Orientation(vertices[remaining[0]], vertices[remaining[1]], vertices[remaining[2]]) != 0 {
		triangles = append(triangles, [3]int{remaining[0], remaining[1], remaining[2]})
	}
	return triangles, nil
}

func neighbours(remaining []int, i int) (int, int, int) {
	n := len(remaining)
	return remaining[(i+n-1)%n], remaining[i], remaining[(i+1)%n]
}

func findEar(vertices []geometry.Point2D, remaining []int, winding int) int {
	for i := range remaining {
		prev, cur, next := neighbours(remaining, i)
		a, b, c := vertices[prev], vertices[cur], vertices[next]
		if geometry.Orientation(a, b, c) != winding {
			continue
		}

		tri := geometry.NewTriangle(a, b, c)
		blocked := false
		for _, other := range remaining {
			if other == prev || other == cur || other == next {
				continue
			}
			p := vertices[other]
			if p == a || p == b || p == c {
				continue
			}
			if tri.Contains(p) {
				blocked = true
				break
			}
		}
		if !blocked {
			return i
		}
	}
	return -1
}

func findCollinear(vertices []geometry.Point2D, remaining []int) int {
	for i := range remaining {
		prev, cur, next := neighbours(remaining, i)
		if geometry.Orientation(vertices[prev], vertices[cur], vertices[next]) == 0 {
			return i
		}
	}
	return -1
}

// findCrossing returns the first pair of non-adjacent edges that intersect
func findCrossing(vertices []geometry.Point2D) (int, int, bool) {
	n := len(vertices)
	for i := 0; i < n; i++ {
		a1, a2 := vertices[i], vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := vertices[j], vertices[(j+1)%n]
			if geometry.SegmentIntersect(a1, a2, b1, b2).Hit {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// signedArea is the shoelace area; its sign gives the winding
func signedArea(vertices []geometry.Point2D) float64 {
	sum := 0.0
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		sum += p.Cross(q)
	}
	return sum / 2
}
