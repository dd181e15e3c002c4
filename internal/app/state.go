package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/internal/measurement"
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

// ViewSettings holds display settings
type ViewSettings struct {
	showLabels bool // segment length labels (L)
	showHelp   bool // key help overlay (H)
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	pressed      bool
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	lastErr    error
	errorAt    time.Time
	labels     []measurement.Label
	labelRects []rl.Rectangle
}
