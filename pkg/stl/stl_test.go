package stl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareTriangles() []geometry.Triangle {
	return []geometry.Triangle{
		geometry.NewTriangle(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(10, 0), geometry.NewPoint2D(10, 10)),
		// Clockwise on purpose
		geometry.NewTriangle(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(0, 10), geometry.NewPoint2D(10, 10)),
	}
}

func TestFromTrianglesWindsUp(t *testing.T) {
	model := FromTriangles("square", squareTriangles())

	require.Equal(t, 2, model.FacetCount())
	for _, f := range model.Facets {
		assert.Equal(t, Vec3{Z: 1}, f.Normal)
		assert.Greater(t, f.Footprint().SignedArea(), 0.0)
	}
	assert.InDelta(t, 100.0, model.FootprintArea(), 1e-12)

	bounds := model.Bounds()
	assert.Equal(t, geometry.NewPoint2D(0, 0), bounds.Min)
	assert.Equal(t, geometry.NewPoint2D(10, 10), bounds.Max)
}

func TestWriteASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, FromTriangles("square", squareTriangles())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "solid square\n"))
	assert.Contains(t, out, "facet normal 0 0 1\n")
	assert.Contains(t, out, "vertex 10 10 0\n")
	assert.Equal(t, 2, strings.Count(out, "endfacet"))
}

func TestRoundTrip(t *testing.T) {
	model := FromTriangles("square", squareTriangles())

	for _, asBinary := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "square.stl")
		require.NoError(t, WriteFile(path, model, asBinary))

		parsed, err := Parse(path)
		require.NoError(t, err)
		assert.Equal(t, "square", parsed.Name)
		assert.Equal(t, model.Facets, parsed.Facets)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorContains(t, err, "failed to open file")
}

func TestReadBinaryWithSolidHeader(t *testing.T) {
	model := FromTriangles("solid part", squareTriangles())
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, model))

	parsed, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "solid part", parsed.Name)
	assert.Equal(t, model.Facets, parsed.Facets)
}

func TestReadEmptySolid(t *testing.T) {
	parsed, err := Read(strings.NewReader("solid empty\nendsolid empty\n"))
	require.NoError(t, err)
	assert.Equal(t, "empty", parsed.Name)
	assert.Equal(t, 0, parsed.FacetCount())
}

func TestReadRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{"empty", "", "empty input"},
		{
			"two vertices",
			"solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\n",
			"line 6: facet has 2 vertices",
		},
		{
			"vertex outside loop",
			"solid x\nfacet normal 0 0 1\nvertex 0 0 0\n",
			`line 3: unexpected "vertex"`,
		},
		{
			"bad number",
			"solid x\nfacet normal 0 zero 1\n",
			"line 2: invalid normal",
		},
		{
			"truncated facet",
			"solid x\nfacet normal 0 0 1\nouter loop\n",
			"unexpected end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestReadTruncatedBinary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, FromTriangles("square", squareTriangles())))
	data := buf.Bytes()[:buf.Len()-10]

	_, err := Read(bytes.NewReader(data))
	assert.ErrorContains(t, err, "failed to read facet 1 of 2")
}
