package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gosketch/pkg/config"
	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCanvas(t *testing.T) *SketchCanvas {
	t.Helper()
	test.NewTempApp(t)
	c := NewSketchCanvas(config.Default(), nil)
	c.Resize(fyne.NewSize(400, 400))
	return c
}

func mouse(x, y float32, mod fyne.KeyModifier) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
		Modifier:   mod,
	}
}

func drag(c *SketchCanvas, x1, y1, x2, y2 float32, mod fyne.KeyModifier) {
	c.MouseIn(mouse(x1, y1, 0))
	c.MouseDown(mouse(x1, y1, mod))
	c.MouseMoved(mouse(x2, y2, mod))
	c.MouseUp(mouse(x2, y2, mod))
}

func TestSketchCanvasDrawsCrossingSegments(t *testing.T) {
	c := newCanvas(t)

	drag(c, 200, 200, 210, 210, 0)
	drag(c, 200, 210, 210, 200, fyne.KeyModifierControl)

	require.Equal(t, 2, c.Segments().Segments().Live())
	points := c.Segments().Intersections().Points()
	require.Len(t, points, 1)
	// The widget centre is the working space origin
	assert.InDelta(t, 5.0, points[0].X, 1e-9)
	assert.InDelta(t, 5.0, points[0].Y, 1e-9)
	assert.Contains(t, c.Status(), "Intersections: 1")
}

func TestSketchCanvasBodyDragUsesPixelDelta(t *testing.T) {
	c := newCanvas(t)
	drag(c, 100, 200, 300, 200, 0)

	drag(c, 200, 202, 203, 206, 0)

	s, ok := c.Segments().Segments().Get(0)
	require.True(t, ok)
	assert.InDelta(t, -97.0, s.Start().X, 1e-9)
	assert.InDelta(t, 4.0, s.Start().Y, 1e-9)
}

func TestSketchCanvasHoverAndDelete(t *testing.T) {
	c := newCanvas(t)
	drag(c, 100, 200, 300, 200, 0)

	c.MouseMoved(mouse(200, 201, 0))
	assert.Equal(t, 0, c.Segments().Hovered().Index)

	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	assert.NoError(t, c.LastError())
	assert.Equal(t, 0, c.Segments().Segments().Live())

	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.ErrorIs(t, c.LastError(), editor.ErrNothingSelected)
}

func TestSketchCanvasPolygonMode(t *testing.T) {
	c := newCanvas(t)
	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	require.Equal(t, ModePolygons, c.Mode())

	for _, p := range [][2]float32{{100, 100}, {200, 100}, {200, 200}, {100, 200}, {101, 101}} {
		c.MouseDown(mouse(p[0], p[1], 0))
		c.MouseUp(mouse(p[0], p[1], 0))
	}
	require.NoError(t, c.LastError())
	require.Equal(t, 1, c.Polygons().Scene().Len())
	assert.Contains(t, c.Status(), "Polygons: 1")

	for _, p := range [][2]float32{{150, 150}, {250, 150}, {250, 250}, {150, 250}, {150, 150}} {
		c.MouseDown(mouse(p[0], p[1], 0))
		c.MouseUp(mouse(p[0], p[1], 0))
	}
	require.Equal(t, 2, c.Polygons().Scene().Len())

	c.MouseMoved(mouse(175, 175, 0))
	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyP})
	require.NoError(t, c.LastError())
	assert.Len(t, c.Polygons().Scene().Pins(), 1)

	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyE})
	assert.NoError(t, c.LastError())

	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyU})
	assert.NoError(t, c.LastError())
	assert.Empty(t, c.Polygons().Scene().Pins())
}

func TestSketchCanvasTriangulationFailure(t *testing.T) {
	c := newCanvas(t)
	c.SetMode(ModePolygons)

	for _, p := range [][2]float32{{200, 200}, {220, 220}, {220, 200}, {200, 240}, {200, 200}} {
		c.MouseDown(mouse(p[0], p[1], 0))
	}

	assert.ErrorIs(t, c.LastError(), editor.ErrTriangulation)
	assert.ErrorIs(t, c.LastError(), mesh.ErrNotSimple)
	assert.Equal(t, editor.StateIdle, c.Polygons().State())
}

func TestSketchCanvasEscapeCancelsChain(t *testing.T) {
	c := newCanvas(t)
	c.SetMode(ModePolygons)
	c.MouseDown(mouse(10, 10, 0))
	require.NotNil(t, c.Polygons().Chain())

	c.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Nil(t, c.Polygons().Chain())
}

func TestSketchCanvasClear(t *testing.T) {
	c := newCanvas(t)
	changes := 0
	c.SetOnChange(func() { changes++ })

	drag(c, 100, 200, 300, 200, 0)
	c.Clear()

	assert.Equal(t, 0, c.Segments().Segments().Len())
	assert.Positive(t, changes)
}
