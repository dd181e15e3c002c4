package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/version"
)

// errorDisplay is how long a failed edit stays in the status panel
const errorDisplay = 4 * time.Second

var helpLines = []string{
	"  Left Drag: Draw / move segment",
	"  Ctrl+Drag: Always draw new segment",
	"  Delete: Delete selected or hovered",
	"  Tab: Switch segments / polygons",
	"  Click: Add chain vertex, first vertex closes",
	"  Esc: Discard open chain",
	"  P / U: Pin / unpin polygon under cursor",
	"  Q / E: Rotate pinned polygon",
	"  L: Labels | N: New sketch | H: Hide help",
}

// statusLines summarizes the editor state
func (app *App) statusLines() []string {
	lines := []string{fmt.Sprintf("Mode: %s", app.Mode)}

	switch app.Mode {
	case ModePolygons:
		scene := app.Polygons.Scene()
		total := 0.0
		for _, p := range scene.Polygons() {
			total += p.Area()
		}
		lines = append(lines,
			fmt.Sprintf("  State: %s", app.Polygons.State()),
			fmt.Sprintf("  Polygons: %d", scene.Len()),
			fmt.Sprintf("  Pins: %d", len(scene.Pins())),
			fmt.Sprintf("  Area: %s", analysis.FormatMeasurement(total, "sq units")),
		)
		if ch := app.Polygons.Chain(); ch != nil {
			lines = append(lines, fmt.Sprintf("  Chain: %d/%d vertices", ch.Len(), ch.MaxVertices()))
		}
	default:
		lines = append(lines,
			fmt.Sprintf("  State: %s", app.Segments.State()),
			fmt.Sprintf("  Segments: %d", app.Segments.Segments().Live()),
			fmt.Sprintf("  Intersections: %d", app.Segments.Intersections().Len()),
		)
		if sel := app.Segments.Active(); !sel.IsNone() {
			lines = append(lines, fmt.Sprintf("  Selected: #%d %s", sel.Index, sel.Region))
		}
	}

	lines = append(lines, fmt.Sprintf("  Cursor: %s", analysis.FormatPoint(app.toWorking(app.Interaction.lastMousePos))))
	return lines
}

// drawUI draws the status panel, help and version
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	for i, line := range app.statusLines() {
		size, color := fontSize14, rl.White
		if i == 0 {
			size, color = fontSize16, rl.Yellow
		}
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, size, 1, color)
		y += lineHeight
	}

	if app.UI.lastErr != nil && time.Since(app.UI.errorAt) < errorDisplay {
		y += lineHeight / 2
		rl.DrawTextEx(app.UI.font, app.UI.lastErr.Error(), rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 100, 100, 255))
		y += lineHeight
	}

	if app.View.showHelp {
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "Keys:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		for _, line := range helpLines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
			y += lineHeight
		}
	} else {
		rl.DrawTextEx(app.UI.font, "H: Show keys", rl.Vector2{X: 10, Y: y + lineHeight}, fontSize12, 1, rl.Gray)
	}

	// Version and FPS in bottom-left corner
	bottomY := app.height - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
