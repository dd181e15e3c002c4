package editor

import "github.com/philipparndt/gosketch/pkg/geometry"

// Button is a pointer button
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Modifiers is a bit set of held modifier keys
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether all modifiers in m are held
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// PointerEvent is a pointer event already mapped into working space.
// PixelDX and PixelDY hold the raw pointer movement since the previous
// event, in screen pixels.
type PointerEvent struct {
	Position  geometry.Point2D
	PixelDX   float64
	PixelDY   float64
	Button    Button
	Modifiers Modifiers
}

// Selection refers to a region of a segment by index
type Selection struct {
	Index  int
	Region geometry.Region
}

// NoSelection is the empty selection
var NoSelection = Selection{Index: -1, Region: geometry.RegionNone}

// IsNone reports whether the selection is empty
func (s Selection) IsNone() bool {
	return s.Index < 0 || s.Region == geometry.RegionNone
}

// State of an editing session
type State int

const (
	StateIdle State = iota
	// StateDrawing is an open polygon chain
	StateDrawing
	// StateDragging moves a segment region, including the end of a new segment
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateDrawing:
		return "drawing"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}
