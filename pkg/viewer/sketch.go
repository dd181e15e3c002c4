// Package viewer provides a fyne widget for sketching segments and polygons
package viewer

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gosketch/pkg/config"
	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/mesh"
)

// Mode selects what pointer input edits
type Mode int

const (
	ModeSegments Mode = iota
	ModePolygons
)

func (m Mode) String() string {
	if m == ModePolygons {
		return "polygons"
	}
	return "segments"
}

// rotateStep is the rotation applied per Q/E key press
const rotateStep = math.Pi / 36

var (
	segmentColor = color.RGBA{R: 15, G: 15, B: 15, A: 255}
	hoverColor   = color.RGBA{R: 30, G: 120, B: 220, A: 255}
	activeColor  = color.RGBA{R: 220, G: 120, B: 30, A: 255}
	markerColor  = color.RGBA{R: 65, G: 65, B: 65, A: 255}
	chainColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	polygonColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	pinnedColor  = color.RGBA{R: 180, G: 110, B: 70, A: 255}
	pinColor     = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// SketchCanvas is an interactive drawing surface. The working space origin
// sits at the centre of the widget.
type SketchCanvas struct {
	widget.BaseWidget

	cfg      config.Config
	logger   *slog.Logger
	mode     Mode
	segments *editor.Session
	polygons *editor.PolygonSession

	objects  []fyne.CanvasObject
	size     fyne.Size
	pointer  fyne.Position
	pressed  bool
	lastErr  error
	onChange func()
}

// NewSketchCanvas creates an empty canvas
func NewSketchCanvas(cfg config.Config, logger *slog.Logger) *SketchCanvas {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &SketchCanvas{cfg: cfg, logger: logger}
	c.reset()
	c.ExtendBaseWidget(c)
	return c
}

func (c *SketchCanvas) reset() {
	c.segments = editor.NewSession(c.cfg.SessionOptions(c.logger)...)
	c.polygons = editor.NewPolygonSession(mesh.EarClipper{}, c.cfg.PolygonOptions(c.logger)...)
	c.lastErr = nil
}

// SetOnChange sets the callback run after every edit
func (c *SketchCanvas) SetOnChange(callback func()) {
	c.onChange = callback
}

// SetMode switches between segment and polygon editing. An open chain is
// discarded.
func (c *SketchCanvas) SetMode(mode Mode) {
	c.polygons.Cancel()
	c.segments.PointerUp()
	c.mode = mode
	c.changed()
}

// Mode returns the editing mode
func (c *SketchCanvas) Mode() Mode {
	return c.mode
}

// Clear removes all geometry
func (c *SketchCanvas) Clear() {
	c.reset()
	c.changed()
}

// Segments returns the segment session
func (c *SketchCanvas) Segments() *editor.Session {
	return c.segments
}

// Polygons returns the polygon session
func (c *SketchCanvas) Polygons() *editor.PolygonSession {
	return c.polygons
}

// LastError returns the error of the most recent failed edit
func (c *SketchCanvas) LastError() error {
	return c.lastErr
}

// Status summarizes the canvas state for a status line
func (c *SketchCanvas) Status() string {
	switch c.mode {
	case ModePolygons:
		return fmt.Sprintf("Mode: polygons | %s | Polygons: %d | Pins: %d",
			c.polygons.State(), c.polygons.Scene().Len(), len(c.polygons.Scene().Pins()))
	default:
		return fmt.Sprintf("Mode: segments | %s | Segments: %d | Intersections: %d",
			c.segments.State(), c.segments.Segments().Live(), c.segments.Intersections().Len())
	}
}

// toWorking maps a widget position into working space
func (c *SketchCanvas) toWorking(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(
		float64(pos.X)-float64(c.size.Width)/2,
		float64(pos.Y)-float64(c.size.Height)/2,
	)
}

func (c *SketchCanvas) toScreen(p geometry.Point2D) fyne.Position {
	return fyne.NewPos(
		float32(p.X)+c.size.Width/2,
		float32(p.Y)+c.size.Height/2,
	)
}

func (c *SketchCanvas) event(ev *desktop.MouseEvent) editor.PointerEvent {
	out := editor.PointerEvent{
		Position: c.toWorking(ev.Position),
		PixelDX:  float64(ev.Position.X - c.pointer.X),
		PixelDY:  float64(ev.Position.Y - c.pointer.Y),
	}
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		out.Button = editor.ButtonRight
	case desktop.MouseButtonTertiary:
		out.Button = editor.ButtonMiddle
	}
	if ev.Modifier&fyne.KeyModifierControl != 0 {
		out.Modifiers |= editor.ModCtrl
	}
	if ev.Modifier&fyne.KeyModifierShift != 0 {
		out.Modifiers |= editor.ModShift
	}
	if ev.Modifier&fyne.KeyModifierAlt != 0 {
		out.Modifiers |= editor.ModAlt
	}
	c.pointer = ev.Position
	return out
}

// MouseDown implements desktop.Mouseable
func (c *SketchCanvas) MouseDown(ev *desktop.MouseEvent) {
	pe := c.event(ev)
	c.pressed = true
	c.lastErr = nil
	if c.mode == ModePolygons {
		c.lastErr = c.polygons.PointerDown(pe)
	} else {
		c.segments.PointerDown(pe)
	}
	c.changed()
}

// MouseUp implements desktop.Mouseable
func (c *SketchCanvas) MouseUp(ev *desktop.MouseEvent) {
	c.event(ev)
	c.pressed = false
	if c.mode == ModePolygons {
		c.polygons.PointerUp()
	} else {
		c.segments.PointerUp()
	}
	c.changed()
}

// MouseIn implements desktop.Hoverable
func (c *SketchCanvas) MouseIn(ev *desktop.MouseEvent) {
	c.pointer = ev.Position
}

// MouseMoved implements desktop.Hoverable
func (c *SketchCanvas) MouseMoved(ev *desktop.MouseEvent) {
	pe := c.event(ev)
	if c.mode == ModePolygons {
		c.polygons.PointerMove(pe)
	} else if c.pressed {
		c.segments.PointerMove(pe)
	} else {
		c.segments.Hover(pe.Position)
	}
	c.changed()
}

// MouseOut implements desktop.Hoverable
func (c *SketchCanvas) MouseOut() {}

// TypedKey handles editing shortcuts. It is wired to the window canvas.
func (c *SketchCanvas) TypedKey(ev *fyne.KeyEvent) {
	at := c.toWorking(c.pointer)
	c.lastErr = nil

	switch ev.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		if c.mode == ModeSegments {
			c.lastErr = c.segments.Delete()
		}
	case fyne.KeyEscape:
		c.polygons.Cancel()
	case fyne.KeyTab:
		if c.mode == ModeSegments {
			c.SetMode(ModePolygons)
		} else {
			c.SetMode(ModeSegments)
		}
		return
	case fyne.KeyP:
		_, c.lastErr = c.polygons.PinAt(at)
	case fyne.KeyU:
		c.lastErr = c.polygons.UnpinAt(at)
	case fyne.KeyQ:
		c.lastErr = c.polygons.RotateAt(at, -rotateStep)
	case fyne.KeyE:
		c.lastErr = c.polygons.RotateAt(at, rotateStep)
	default:
		return
	}
	c.changed()
}

func (c *SketchCanvas) changed() {
	if c.lastErr != nil {
		c.logger.Debug("edit failed", "error", c.lastErr)
	}
	c.Refresh()
	if c.onChange != nil {
		c.onChange()
	}
}

// Render rebuilds the canvas objects for the given size
func (c *SketchCanvas) Render(size fyne.Size) {
	c.size = size
	c.objects = nil

	origin := geometry.NewPoint2D(float64(size.Width)/2, float64(size.Height)/2)
	var fills []polygonFill
	for _, p := range c.polygons.Scene().Polygons() {
		fill := polygonFill{triangles: p.WorldTriangles(), color: polygonColor}
		if p.Pinned() {
			fill.color = pinnedColor
		}
		fills = append(fills, fill)
	}
	if len(fills) > 0 && size.Width >= 1 && size.Height >= 1 {
		img := canvas.NewImageFromImage(rasterizePolygons(int(size.Width), int(size.Height), origin, fills))
		img.FillMode = canvas.ImageFillStretch
		img.ScaleMode = canvas.ImageScalePixels
		img.Resize(size)
		c.objects = append(c.objects, img)
	}

	for _, pin := range c.polygons.Scene().Pins() {
		c.objects = append(c.objects, c.circle(pin.Position(), 5, pinColor, nil, 0))
	}

	hovered := c.segments.Hovered()
	active := c.segments.Active()
	c.segments.Segments().Each(func(i int, s *geometry.Segment) bool {
		col := segmentColor
		switch i {
		case active.Index:
			col = activeColor
		case hovered.Index:
			col = hoverColor
		}
		c.objects = append(c.objects, c.line(s.Start(), s.End(), col))
		return true
	})

	if ch := c.polygons.Chain(); ch != nil {
		vertices := ch.Vertices()
		for i := 1; i < len(vertices); i++ {
			c.objects = append(c.objects, c.line(vertices[i-1], vertices[i], chainColor))
		}
		c.objects = append(c.objects, c.circle(ch.First(), ch.SnapTolerance(), nil, chainColor, 1))
	}

	for _, p := range c.segments.Intersections().Points() {
		c.objects = append(c.objects, c.circle(p, 5, nil, markerColor, 4))
	}
}

func (c *SketchCanvas) line(a, b geometry.Point2D, col color.Color) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = 2
	line.Position1 = c.toScreen(a)
	line.Position2 = c.toScreen(b)
	return line
}

func (c *SketchCanvas) circle(center geometry.Point2D, radius float64, fill, stroke color.Color, strokeWidth float32) *canvas.Circle {
	circle := canvas.NewCircle(fill)
	circle.StrokeColor = stroke
	circle.StrokeWidth = strokeWidth
	size := float32(2 * radius)
	circle.Resize(fyne.NewSize(size, size))
	circle.Move(c.toScreen(center).SubtractXY(size/2, size/2))
	return circle
}

// CreateRenderer implements fyne.Widget
func (c *SketchCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{canvas: c}
}

// sketchRenderer implements fyne.WidgetRenderer
type sketchRenderer struct {
	canvas *SketchCanvas
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.canvas.Render(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *sketchRenderer) Refresh() {
	r.canvas.Render(r.canvas.Size())
	canvas.Refresh(r.canvas)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return r.canvas.objects
}

func (r *sketchRenderer) Destroy() {}
