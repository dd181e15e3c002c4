package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Priority orders labels when they overlap; higher wins
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHovered
	PrioritySelected
)

// Segment is a live segment to annotate, in working space
type Segment struct {
	Index int
	Start geometry.Point2D
	End   geometry.Point2D
}

// Projector maps a working-space point to screen pixels
type Projector func(geometry.Point2D) rl.Vector2

// Label represents a label for rendering measurements
type Label struct {
	Text       string
	ScreenPos  rl.Vector2
	BaseColor  rl.Color
	HoverColor rl.Color
	Priority   Priority
	Index      int
}

var (
	segmentColor      = rl.NewColor(100, 200, 255, 255)
	segmentHoverColor = rl.NewColor(150, 220, 255, 255)
	markerColor       = rl.NewColor(255, 120, 80, 255)
)
