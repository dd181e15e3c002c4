// Package app is the raylib sketch editor behind "gosketch edit".
package app

import (
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/pkg/config"
	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/mesh"
)

// rotateStep is the rotation applied per Q/E key press
const rotateStep = math.Pi / 36

type App struct {
	cfg    config.Config
	logger *slog.Logger

	Mode        Mode
	Segments    *editor.Session
	Polygons    *editor.PolygonSession
	View        ViewSettings
	Interaction InteractionState
	UI          UIState

	width, height float32
}

func newApp(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	app := &App{
		cfg:    cfg,
		logger: logger,
		View:   ViewSettings{showLabels: true},
		width:  float32(cfg.Window.Width),
		height: float32(cfg.Window.Height),
	}
	app.reset()
	return app
}

func (app *App) reset() {
	app.Segments = editor.NewSession(app.cfg.SessionOptions(app.logger)...)
	app.Polygons = editor.NewPolygonSession(mesh.EarClipper{}, app.cfg.PolygonOptions(app.logger)...)
	app.UI.lastErr = nil
}

// Run opens the editor window and blocks until it is closed
func Run(cfg config.Config, logger *slog.Logger) error {
	app := newApp(cfg, logger)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "GoSketch")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull) // Esc cancels chains instead

	app.UI.font = rl.GetFontDefault()
	app.Interaction.lastMousePos = rl.GetMousePosition()
	app.logger.Info("editor started", "width", cfg.Window.Width, "height", cfg.Window.Height)

	for !rl.WindowShouldClose() {
		app.width = float32(rl.GetScreenWidth())
		app.height = float32(rl.GetScreenHeight())

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		app.drawScene()
		app.drawUI()
		rl.EndDrawing()
	}

	app.logger.Info("editor closed",
		"segments", app.Segments.Segments().Live(),
		"polygons", app.Polygons.Scene().Len())
	return nil
}

// toWorking maps a screen position into working space
func (app *App) toWorking(pos rl.Vector2) geometry.Point2D {
	return geometry.NewPoint2D(
		float64(pos.X)-float64(app.width)/2,
		float64(pos.Y)-float64(app.height)/2,
	)
}

// toScreen maps a working-space point to screen pixels
func (app *App) toScreen(p geometry.Point2D) rl.Vector2 {
	return rl.Vector2{
		X: float32(p.X) + app.width/2,
		Y: float32(p.Y) + app.height/2,
	}
}

func (app *App) fail(err error) {
	app.UI.lastErr = err
	if err != nil {
		app.UI.errorAt = time.Now()
		app.logger.Debug("edit failed", "error", err)
	}
}
