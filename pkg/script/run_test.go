package script

import (
	"testing"

	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, doc string, opts ...editor.Option) *Result {
	t.Helper()
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	result, err := s.Run(nil, opts...)
	require.NoError(t, err)
	return result
}

func TestRunCrossingSegments(t *testing.T) {
	result := run(t, crossing)

	require.Len(t, result.Segments, 2)
	require.Len(t, result.Intersections, 1)
	assert.Equal(t, 0, result.Intersections[0].A)
	assert.Equal(t, 1, result.Intersections[0].B)
	assert.InDelta(t, 5.0, result.Intersections[0].Point.X, 1e-12)
	assert.InDelta(t, 5.0, result.Intersections[0].Point.Y, 1e-12)
	assert.Empty(t, result.Errors)
}

func TestRunDeleteRecordsErrors(t *testing.T) {
	result := run(t, crossing+`
  - hover: [1, 9]
  - delete: true
  - delete: true
`)

	assert.Len(t, result.Segments, 1)
	assert.Equal(t, 0, result.Segments[0].Index)
	assert.Empty(t, result.Intersections)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 9, result.Errors[0].Step)
	assert.Equal(t, "delete", result.Errors[0].Action)
}

func TestRunBodyDragUsesMoveDelta(t *testing.T) {
	result := run(t, `
steps:
  - down: [0, 0]
  - move: [100, 0]
  - up: true
  - down: [50, 2]
  - move: [53, 6]
  - up: true
`)

	require.Len(t, result.Segments, 1)
	assert.Equal(t, geometry.NewPoint2D(3, 4), result.Segments[0].Start)
	assert.Equal(t, geometry.NewPoint2D(103, 4), result.Segments[0].End)
}

func TestRunNearOverridesOptions(t *testing.T) {
	doc := `
near: 20
steps:
  - down: [0, 0]
  - move: [100, 0]
  - up: true
  - down: [50, 15]
  - up: true
`
	result := run(t, doc, editor.WithNearDistance(1))
	assert.Len(t, result.Segments, 1)
}

func TestRunPolygons(t *testing.T) {
	result := run(t, `
mode: polygons
steps:
  - down: [0, 0]
  - down: [100, 0]
  - down: [100, 100]
  - down: [0, 100]
  - down: [2, 2]
  - down: [50, 50]
  - down: [150, 50]
  - down: [150, 150]
  - down: [50, 150]
  - down: [50, 50]
  - pin: [75, 75]
  - rotate: {at: [75, 75], degrees: 180}
  - down: [300, 300]
  - move: [320, 300]
`)

	require.Len(t, result.Polygons, 2)
	assert.InDelta(t, 10000.0, result.Polygons[0].Area, 1e-9)
	assert.Equal(t, 0, result.Polygons[0].Parent)
	assert.Equal(t, result.Polygons[0].ID, result.Polygons[1].Parent)
	assert.InDelta(t, 100.0, result.Polygons[1].Vertices[0].X, 1e-9)
	assert.InDelta(t, 100.0, result.Polygons[1].Vertices[0].Y, 1e-9)

	require.Len(t, result.Pins, 1)
	assert.Equal(t, geometry.NewPoint2D(75, 75), result.Pins[0].Position)

	assert.Equal(t, []geometry.Point2D{geometry.NewPoint2D(300, 300), geometry.NewPoint2D(320, 300)}, result.Chain)
	assert.Empty(t, result.Errors)
}

func TestRunPolygonTriangulationFailure(t *testing.T) {
	result := run(t, `
mode: polygons
snap: 1
steps:
  - down: [0, 0]
  - down: [20, 20]
  - down: [20, 0]
  - down: [0, 40]
  - down: [0, 0]
`)

	assert.Empty(t, result.Polygons)
	assert.Empty(t, result.Chain)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 5, result.Errors[0].Step)
	assert.Contains(t, result.Errors[0].Error, editor.ErrTriangulation.Error())
}

func TestRunRejectsActionsOfOtherMode(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - pin: [1, 1]\n"))
	require.NoError(t, err)

	_, err = s.Run(nil)
	assert.ErrorContains(t, err, "not available in segments mode")
}

func TestResultBounds(t *testing.T) {
	bounds := run(t, crossing).Bounds()
	assert.Equal(t, geometry.NewPoint2D(0, 0), bounds.Min)
	assert.Equal(t, geometry.NewPoint2D(10, 10), bounds.Max)
}
