package mesh

import (
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(coords ...float64) []geometry.Point2D {
	out := make([]geometry.Point2D, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geometry.NewPoint2D(coords[i], coords[i+1]))
	}
	return out
}

func triangulatedArea(vertices []geometry.Point2D, triangles [][3]int) float64 {
	area := 0.0
	for _, t := range triangles {
		area += geometry.NewTriangle(vertices[t[0]], vertices[t[1]], vertices[t[2]]).Area()
	}
	return area
}

func TestEarClipper(t *testing.T) {
	tests := []struct {
		name      string
		vertices  []geometry.Point2D
		triangles int
		area      float64
	}{
		{"triangle", points(0, 0, 10, 0, 0, 10), 1, 50},
		{"square", points(0, 0, 10, 0, 10, 10, 0, 10), 2, 100},
		{"square reversed", points(0, 10, 10, 10, 10, 0, 0, 0), 2, 100},
		{"concave", points(0, 0, 10, 0, 10, 10, 5, 5, 0, 10), 3, 75},
		{"collinear vertex", points(0, 0, 5, 0, 10, 0, 10, 10, 0, 10), 3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triangles, err := EarClipper{}.Triangulate(tt.vertices)
			require.NoError(t, err)
			assert.Len(t, triangles, tt.triangles)
			assert.InDelta(t, tt.area, triangulatedArea(tt.vertices, triangles), tolerance)
		})
	}
}

func TestEarClipperRejectsSelfIntersection(t *testing.T) {
	_, err := EarClipper{}.Triangulate(points(0, 0, 10, 10, 10, 0, 0, 20))
	assert.ErrorIs(t, err, ErrNotSimple)
}

func TestEarClipperRejectsDegenerate(t *testing.T) {
	_, err := EarClipper{}.Triangulate(points(0, 0, 10, 0))
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = EarClipper{}.Triangulate(points(0, 0, 5, 0, 10, 0))
	assert.ErrorIs(t, err, ErrDegenerate)
}
