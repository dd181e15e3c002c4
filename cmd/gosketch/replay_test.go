package main

import (
	"bytes"
	"testing"

	"github.com/philipparndt/gosketch/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, doc string) *script.Result {
	t.Helper()
	s, err := script.Parse([]byte(doc))
	require.NoError(t, err)
	result, err := s.Run(nil)
	require.NoError(t, err)
	return result
}

func TestPrintResultSegments(t *testing.T) {
	result := runScript(t, `
mode: segments
steps:
  - down: [0, 0]
  - move: [10, 10]
  - up: true
  - down: [0, 10]
    ctrl: true
  - move: [10, 0]
  - up: true
  - delete: true
`)

	var buf bytes.Buffer
	printResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "Segments (2):")
	assert.Contains(t, out, "Intersections (1):")
	assert.Contains(t, out, "0-1  (5.000, 5.000)")
	assert.Contains(t, out, "Step errors (1):")
}

func TestPolygonModel(t *testing.T) {
	result := runScript(t, `
mode: polygons
steps:
  - down: [0, 0]
  - down: [20, 0]
  - down: [20, 20]
  - down: [0, 20]
  - down: [1, 1]
`)
	require.Len(t, result.Polygons, 1)

	model := polygonModel("square", result)
	assert.Equal(t, "square", model.Name)
	assert.Equal(t, 2, model.FacetCount())
	assert.InDelta(t, 400, model.FootprintArea(), 1e-9)

	var buf bytes.Buffer
	printResult(&buf, result)
	assert.Contains(t, buf.String(), "Polygons (1):")
}
