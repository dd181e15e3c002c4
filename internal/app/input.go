package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/internal/measurement"
	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// editKeys are the shortcuts handled by command
var editKeys = []int32{
	rl.KeyDelete, rl.KeyBackspace, rl.KeyEscape, rl.KeyTab,
	rl.KeyP, rl.KeyU, rl.KeyQ, rl.KeyE, rl.KeyL, rl.KeyH, rl.KeyN,
}

// handleInput processes user input
func (app *App) handleInput() {
	mousePos := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pointerDown(mousePos, currentModifiers())
	}
	if mousePos != app.Interaction.lastMousePos {
		app.pointerMove(mousePos)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.pointerUp(mousePos)
	}

	for _, key := range editKeys {
		if rl.IsKeyPressed(key) {
			app.command(key)
		}
	}
}

func currentModifiers() editor.Modifiers {
	var mods editor.Modifiers
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		mods |= editor.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= editor.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		mods |= editor.ModAlt
	}
	return mods
}

// event converts a screen position into a pointer event. The pixel delta is
// measured against the previous position and the previous position is
// advanced.
func (app *App) event(pos rl.Vector2, mods editor.Modifiers) editor.PointerEvent {
	ev := editor.PointerEvent{
		Position:  app.toWorking(pos),
		PixelDX:   float64(pos.X - app.Interaction.lastMousePos.X),
		PixelDY:   float64(pos.Y - app.Interaction.lastMousePos.Y),
		Modifiers: mods,
	}
	app.Interaction.lastMousePos = pos
	return ev
}

func (app *App) pointerDown(pos rl.Vector2, mods editor.Modifiers) {
	ev := app.event(pos, mods)
	app.Interaction.pressed = true
	app.fail(nil)

	if app.Mode == ModePolygons {
		app.fail(app.Polygons.PointerDown(ev))
		return
	}

	// a click on a length label drags that segment's body
	if mods == 0 && app.View.showLabels {
		if idx := app.labelAt(pos); idx >= 0 && app.Segments.Grab(idx, geometry.RegionBody) {
			return
		}
	}
	app.Segments.PointerDown(ev)
}

func (app *App) pointerMove(pos rl.Vector2) {
	ev := app.event(pos, 0)
	switch {
	case app.Mode == ModePolygons:
		app.Polygons.PointerMove(ev)
	case app.Interaction.pressed:
		app.Segments.PointerMove(ev)
	default:
		app.Segments.Hover(ev.Position)
	}
}

func (app *App) pointerUp(pos rl.Vector2) {
	app.event(pos, 0)
	app.Interaction.pressed = false
	if app.Mode == ModePolygons {
		app.Polygons.PointerUp()
	} else {
		app.Segments.PointerUp()
	}
}

// command runs the shortcut bound to key at the current pointer position
func (app *App) command(key int32) {
	at := app.toWorking(app.Interaction.lastMousePos)

	switch key {
	case rl.KeyDelete, rl.KeyBackspace:
		if app.Mode == ModeSegments {
			app.fail(app.Segments.Delete())
		}
	case rl.KeyEscape:
		app.Polygons.Cancel()
		app.fail(nil)
	case rl.KeyTab:
		app.setMode(1 - app.Mode)
	case rl.KeyP:
		_, err := app.Polygons.PinAt(at)
		app.fail(err)
	case rl.KeyU:
		app.fail(app.Polygons.UnpinAt(at))
	case rl.KeyQ:
		app.fail(app.Polygons.RotateAt(at, -rotateStep))
	case rl.KeyE:
		app.fail(app.Polygons.RotateAt(at, rotateStep))
	case rl.KeyL:
		app.View.showLabels = !app.View.showLabels
	case rl.KeyH:
		app.View.showHelp = !app.View.showHelp
	case rl.KeyN:
		app.reset()
	}
}

// setMode switches editing mode; an open chain is discarded
func (app *App) setMode(mode Mode) {
	app.Polygons.Cancel()
	app.Segments.PointerUp()
	app.Interaction.pressed = false
	app.Mode = mode
	app.fail(nil)
	app.logger.Debug("mode changed", "mode", mode)
}

// labelAt returns the segment whose length label was drawn under pos, or -1
func (app *App) labelAt(pos rl.Vector2) int {
	return measurement.LabelAt(app.UI.labels, app.UI.labelRects, pos)
}
