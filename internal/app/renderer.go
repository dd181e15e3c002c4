package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/internal/measurement"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	lineThickness  = 2
	markerRadius   = 5
	markerStroke   = 4
	pinRadius      = 5
	circleSegments = 24
	labelFontSize  = 14
	labelPadding   = 4
)

var (
	backgroundColor = rl.NewColor(15, 18, 25, 255)
	segmentColor    = rl.NewColor(100, 200, 255, 255)
	hoverColor      = rl.NewColor(150, 220, 255, 255)
	activeColor     = rl.Yellow
	markerColor     = rl.NewColor(255, 120, 80, 255)
	chainColor      = rl.NewColor(255, 80, 80, 255)
	polygonColor    = rl.NewColor(70, 130, 180, 200)
	pinnedColor     = rl.NewColor(180, 110, 70, 200)
	pinColor        = rl.RayWhite
)

// drawScene draws polygons, segments, the open chain and intersections
func (app *App) drawScene() {
	scene := app.Polygons.Scene()
	for _, p := range scene.Polygons() {
		color := polygonColor
		if p.Pinned() {
			color = pinnedColor
		}
		for _, t := range p.WorldTriangles() {
			app.fillTriangle(t.A, t.B, t.C, color)
		}
		app.drawOutline(p.WorldVertices(), rl.Fade(color, 1))
	}
	for _, pin := range scene.Pins() {
		pos := app.toScreen(pin.Position())
		rl.DrawCircleV(pos, pinRadius, pinColor)
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), pinRadius, rl.Black)
	}

	hovered := app.Segments.Hovered()
	active := app.Segments.Active()
	app.Segments.Segments().Each(func(i int, s *geometry.Segment) bool {
		color := segmentColor
		switch i {
		case active.Index:
			color = activeColor
		case hovered.Index:
			color = hoverColor
		}
		rl.DrawLineEx(app.toScreen(s.Start()), app.toScreen(s.End()), lineThickness, color)
		return true
	})

	if ch := app.Polygons.Chain(); ch != nil {
		vertices := ch.Vertices()
		for i := 1; i < len(vertices); i++ {
			rl.DrawLineEx(app.toScreen(vertices[i-1]), app.toScreen(vertices[i]), lineThickness, chainColor)
		}
		first := app.toScreen(ch.First())
		rl.DrawCircleLines(int32(first.X), int32(first.Y), float32(ch.SnapTolerance()), chainColor)
	}

	for _, p := range app.Segments.Intersections().Points() {
		app.drawRing(p, markerColor)
	}

	app.UI.labels, app.UI.labelRects = nil, nil
	if app.View.showLabels && app.Mode == ModeSegments {
		labels := measurement.SegmentLabels(app.segmentList(), app.toScreen, hovered.Index, active.Index)
		app.UI.labels, app.UI.labelRects = measurement.Draw(labels, app.UI.font, labelFontSize, labelPadding)
	}
}

// segmentList snapshots the live segments for labelling
func (app *App) segmentList() []measurement.Segment {
	var out []measurement.Segment
	app.Segments.Segments().Each(func(i int, s *geometry.Segment) bool {
		out = append(out, measurement.Segment{Index: i, Start: s.Start(), End: s.End()})
		return true
	})
	return out
}

// fillTriangle draws a filled triangle in any winding. raylib culls
// triangles that are not counter-clockwise on screen.
func (app *App) fillTriangle(a, b, c geometry.Point2D, color rl.Color) {
	switch geometry.Orientation(a, b, c) {
	case 0:
		return
	case 1:
		b, c = c, b
	}
	rl.DrawTriangle(app.toScreen(a), app.toScreen(b), app.toScreen(c), color)
}

func (app *App) drawOutline(vertices []geometry.Point2D, color rl.Color) {
	for i := range vertices {
		next := vertices[(i+1)%len(vertices)]
		rl.DrawLineEx(app.toScreen(vertices[i]), app.toScreen(next), 1, color)
	}
}

// drawRing draws an intersection marker from the ring triangle strip
func (app *App) drawRing(center geometry.Point2D, color rl.Color) {
	strip := geometry.Ring(center, markerRadius, markerStroke, circleSegments)
	for i := 0; i+2 < len(strip); i++ {
		app.fillTriangle(strip[i], strip[i+1], strip[i+2], color)
	}
}
