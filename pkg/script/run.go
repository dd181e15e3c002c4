package script

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/mesh"
)

// SegmentRecord is a live segment after replay
type SegmentRecord struct {
	Index int              `json:"index"`
	Start geometry.Point2D `json:"start"`
	End   geometry.Point2D `json:"end"`
}

// Length returns the segment length
func (r SegmentRecord) Length() float64 {
	return r.Start.Distance(r.End)
}

// IntersectionRecord is a crossing between two live segments
type IntersectionRecord struct {
	A     int              `json:"a"`
	B     int              `json:"b"`
	Point geometry.Point2D `json:"point"`
}

// PolygonRecord is a polygon in world space after replay
type PolygonRecord struct {
	ID        int                `json:"id"`
	Vertices  []geometry.Point2D `json:"vertices"`
	Triangles [][3]int           `json:"triangles"`
	Area      float64            `json:"area"`
	Parent    int                `json:"parent,omitempty"`
}

// PinRecord is a pin binding after replay
type PinRecord struct {
	Parent   int              `json:"parent"`
	Child    int              `json:"child"`
	Position geometry.Point2D `json:"position"`
}

// StepError is a recoverable failure of a single step
type StepError struct {
	Step   int    `json:"step"`
	Action string `json:"action"`
	Error  string `json:"error"`
}

// Result is the editor state at the end of a replay
type Result struct {
	Mode          Mode                 `json:"mode"`
	Steps         int                  `json:"steps"`
	Segments      []SegmentRecord      `json:"segments,omitempty"`
	Intersections []IntersectionRecord `json:"intersections,omitempty"`
	Polygons      []PolygonRecord      `json:"polygons,omitempty"`
	Pins          []PinRecord          `json:"pins,omitempty"`
	Chain         []geometry.Point2D   `json:"chain,omitempty"`
	Errors        []StepError          `json:"errors,omitempty"`
}

// Run replays the script. opts are applied before the script's own near
// and snap values. Failures of single steps are collected in the result;
// the returned error is reserved for steps the mode cannot handle.
func (s *Script) Run(logger *slog.Logger, opts ...editor.Option) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts = append(opts, editor.WithLogger(logger))
	if s.Near > 0 {
		opts = append(opts, editor.WithNearDistance(s.Near))
	}
	if s.Snap > 0 {
		opts = append(opts, editor.WithSnapTolerance(s.Snap))
	}

	switch s.Mode {
	case ModePolygons:
		return s.runPolygons(logger, editor.NewPolygonSession(mesh.EarClipper{}, opts...))
	default:
		return s.runSegments(logger, editor.NewSession(opts...))
	}
}

// pointer turns absolute script positions into events with pixel deltas
type pointer struct {
	last geometry.Point2D
}

func (p *pointer) event(v Vec, ctrl bool) editor.PointerEvent {
	pos := v.Point()
	ev := editor.PointerEvent{
		Position: pos,
		PixelDX:  pos.X - p.last.X,
		PixelDY:  pos.Y - p.last.Y,
	}
	if ctrl {
		ev.Modifiers = editor.ModCtrl
	}
	p.last = pos
	return ev
}

func (s *Script) runSegments(logger *slog.Logger, session *editor.Session) (*Result, error) {
	result := &Result{Mode: s.Mode, Steps: len(s.Steps)}
	var ptr pointer

	for i, step := range s.Steps {
		var err error
		switch {
		case step.Down != nil:
			session.PointerDown(ptr.event(*step.Down, step.Ctrl))
		case step.Move != nil:
			session.PointerMove(ptr.event(*step.Move, false))
		case step.Up:
			session.PointerUp()
		case step.Hover != nil:
			session.Hover(ptr.event(*step.Hover, false).Position)
		case step.Delete:
			err = session.Delete()
		default:
			return nil, fmt.Errorf("step %d: %s is not available in %s mode", i+1, step.Action(), s.Mode)
		}
		result.record(logger, i, step, err)
	}

	session.Segments().Each(func(i int, seg *geometry.Segment) bool {
		result.Segments = append(result.Segments, SegmentRecord{Index: i, Start: seg.Start(), End: seg.End()})
		return true
	})
	for _, e := range session.Intersections().Entries() {
		result.Intersections = append(result.Intersections, IntersectionRecord{A: e.Key.Lo, B: e.Key.Hi, Point: e.Point})
	}
	return result, nil
}

func (s *Script) runPolygons(logger *slog.Logger, session *editor.PolygonSession) (*Result, error) {
	result := &Result{Mode: s.Mode, Steps: len(s.Steps)}
	var ptr pointer

	for i, step := range s.Steps {
		var err error
		switch {
		case step.Down != nil:
			err = session.PointerDown(ptr.event(*step.Down, step.Ctrl))
		case step.Move != nil:
			session.PointerMove(ptr.event(*step.Move, false))
		case step.Up:
			session.PointerUp()
		case step.Cancel:
			session.Cancel()
		case step.Pin != nil:
			_, err = session.PinAt(step.Pin.Point())
		case step.Unpin != nil:
			err = session.UnpinAt(step.Unpin.Point())
		case step.Rotate != nil:
			err = session.RotateAt(step.Rotate.At.Point(), step.Rotate.Degrees*math.Pi/180)
		default:
			return nil, fmt.Errorf("step %d: %s is not available in %s mode", i+1, step.Action(), s.Mode)
		}
		result.record(logger, i, step, err)
	}

	for _, p := range session.Scene().Polygons() {
		record := PolygonRecord{
			ID:        p.ID(),
			Vertices:  p.WorldVertices(),
			Triangles: p.Triangles(),
			Area:      p.Area(),
		}
		if p.Parent() != nil {
			record.Parent = p.Parent().ID()
		}
		result.Polygons = append(result.Polygons, record)
	}
	for _, pin := range session.Scene().Pins() {
		result.Pins = append(result.Pins, PinRecord{Parent: pin.Parent.ID(), Child: pin.Child.ID(), Position: pin.Position()})
	}
	if c := session.Chain(); c != nil {
		result.Chain = c.Vertices()
	}
	return result, nil
}

func (r *Result) record(logger *slog.Logger, i int, step Step, err error) {
	if err == nil {
		return
	}
	logger.Warn("step failed", "step", i+1, "action", step.Action(), "error", err)
	r.Errors = append(r.Errors, StepError{Step: i + 1, Action: step.Action(), Error: err.Error()})
}

// Bounds returns the box around all geometry in the result
func (r *Result) Bounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	for _, s := range r.Segments {
		bounds.Extend(s.Start)
		bounds.Extend(s.End)
	}
	for _, p := range r.Polygons {
		for _, v := range p.Vertices {
			bounds.Extend(v)
		}
	}
	for _, v := range r.Chain {
		bounds.Extend(v)
	}
	return bounds
}
