// Package editor holds the interactive editing state machines. A Session
// edits line segments and keeps their intersections indexed; a
// PolygonSession builds polygons from vertex chains.
//
// Sessions are not safe for concurrent use. Drive them from the goroutine
// that receives input events.
package editor

import (
	"errors"
	"log/slog"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// DefaultNearDistance is the pick distance for segment regions
const DefaultNearDistance = 5.0

// ErrNothingSelected is returned by Delete without an active or hovered
// segment
var ErrNothingSelected = errors.New("no segment selected")

// Option configures a session
type Option func(*options)

type options struct {
	nearDistance  float64
	snapTolerance float64
	maxVertices   int
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		nearDistance: DefaultNearDistance,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithNearDistance sets how close the pointer must be to pick a segment
func WithNearDistance(d float64) Option {
	return func(o *options) {
		o.nearDistance = d
	}
}

// WithLogger sets the logger for state transitions
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Session edits a collection of segments
type Session struct {
	segments *SegmentCollection
	index    *IntersectionIndex
	broad    *broadPhase

	active  Selection
	hovered Selection
	hoverAt geometry.Point2D
	state   State

	nearDistance float64
	logger       *slog.Logger
}

// NewSession creates an empty segment editing session
func NewSession(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{
		segments:     NewSegmentCollection(),
		index:        NewIntersectionIndex(),
		broad:        newBroadPhase(),
		active:       NoSelection,
		hovered:      NoSelection,
		nearDistance: o.nearDistance,
		logger:       o.logger,
	}
}

// PointerDown picks the newest segment region near the pointer. Without a
// hit, or with Ctrl held, it starts a new zero length segment and drags its
// end.
func (s *Session) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonLeft {
		return
	}

	if !ev.Modifiers.Has(ModCtrl) {
		if hit := s.pick(ev.Position); !hit.IsNone() {
			s.active = hit
			s.state = StateDragging
			s.logger.Debug("segment picked", "index", hit.Index, "region", hit.Region)
			return
		}
	}

	i := s.segments.Add(geometry.NewSegment(ev.Position, ev.Position))
	s.active = Selection{Index: i, Region: geometry.RegionEnd}
	s.state = StateDragging
	s.refresh(i)
	s.logger.Debug("segment created", "index", i, "x", ev.Position.X, "y", ev.Position.Y)
}

// Grab starts dragging region of segment i as if it had been picked. It
// reports false for removed segments and RegionNone.
func (s *Session) Grab(i int, region geometry.Region) bool {
	if region == geometry.RegionNone {
		return false
	}
	if _, ok := s.segments.Get(i); !ok {
		return false
	}
	s.active = Selection{Index: i, Region: region}
	s.state = StateDragging
	s.logger.Debug("segment grabbed", "index", i, "region", region)
	return true
}

// PointerMove applies the pointer to the active region. Endpoints follow the
// working space position. The body follows the raw pixel delta, which only
// matches the working space delta while the mapping has unit scale.
func (s *Session) PointerMove(ev PointerEvent) {
	if s.active.IsNone() {
		return
	}
	seg, ok := s.segments.Get(s.active.Index)
	if !ok {
		s.active = NoSelection
		s.state = StateIdle
		return
	}

	switch s.active.Region {
	case geometry.RegionStart:
		seg.SetStart(ev.Position)
	case geometry.RegionEnd:
		seg.SetEnd(ev.Position)
	case geometry.RegionBody:
		seg.Translate(ev.PixelDX, ev.PixelDY)
	}
	s.refresh(s.active.Index)
}

// PointerUp ends a drag
func (s *Session) PointerUp() {
	if !s.active.IsNone() {
		s.logger.Debug("drag finished", "index", s.active.Index)
	}
	s.active = NoSelection
	s.state = StateIdle
}

// Hover updates the hovered selection for p and returns it
func (s *Session) Hover(p geometry.Point2D) Selection {
	s.hoverAt = p
	s.hovered = s.pick(p)
	return s.hovered
}

// Delete removes the active segment, or the hovered one when nothing is
// being dragged
func (s *Session) Delete() error {
	target := s.active
	if target.IsNone() {
		target = s.hovered
	}
	if target.IsNone() || !s.segments.Remove(target.Index) {
		return ErrNothingSelected
	}

	purged := s.index.Purge(target.Index)
	s.broad.Remove(target.Index)
	s.active = NoSelection
	s.hovered = NoSelection
	s.state = StateIdle
	s.logger.Debug("segment deleted", "index", target.Index, "intersections", purged)
	return nil
}

// Rebuild recomputes the whole intersection index from scratch
func (s *Session) Rebuild() {
	s.index.Clear()
	s.broad.Reset()
	s.segments.Each(func(i int, seg *geometry.Segment) bool {
		if err := s.broad.Update(i, seg); err != nil {
			s.logger.Warn("segment left out of the broad phase", "index", i, "error", err)
		}
		return true
	})
	s.segments.Each(func(i int, seg *geometry.Segment) bool {
		s.intersect(i, seg, func(j int) bool { return j > i })
		return true
	})
}

// pick returns the first segment region near p, newest segment first
func (s *Session) pick(p geometry.Point2D) Selection {
	hit := NoSelection
	s.segments.EachReverse(func(i int, seg *geometry.Segment) bool {
		if region := seg.Classify(p, s.nearDistance); region != geometry.RegionNone {
			hit = Selection{Index: i, Region: region}
			return false
		}
		return true
	})
	return hit
}

// refresh replaces the index entries of segment i after it changed. A
// hovered segment that moved away from the last hover position is no longer
// hovered.
func (s *Session) refresh(i int) {
	seg, ok := s.segments.Get(i)
	if !ok {
		return
	}
	if s.hovered.Index == i {
		if region := seg.Classify(s.hoverAt, s.nearDistance); region == geometry.RegionNone {
			s.hovered = NoSelection
		} else {
			s.hovered.Region = region
		}
	}

	s.index.Purge(i)
	if err := s.broad.Update(i, seg); err != nil {
		s.logger.Warn("segment left out of the broad phase", "index", i, "error", err)
		return
	}
	s.intersect(i, seg, func(j int) bool { return j != i })
}

func (s *Session) intersect(i int, seg *geometry.Segment, accept func(j int) bool) {
	candidates, err := s.broad.Candidates(seg)
	if err != nil {
		s.logger.Warn("no intersection candidates", "index", i, "error", err)
		return
	}
	for _, j := range candidates {
		if !accept(j) {
			continue
		}
		other, ok := s.segments.Get(j)
		if !ok {
			continue
		}
		if result := seg.Intersect(other); result.Hit {
			s.index.Set(NewPairKey(i, j), result.Point)
		}
	}
}

// Segments returns the segment collection for rendering. Callers must not
// mutate it.
func (s *Session) Segments() *SegmentCollection {
	return s.segments
}

// Intersections returns the intersection index for rendering
func (s *Session) Intersections() *IntersectionIndex {
	return s.index
}

// Active returns the selection being dragged
func (s *Session) Active() Selection {
	return s.active
}

// Hovered returns the selection under the pointer at the last Hover call
func (s *Session) Hovered() Selection {
	return s.hovered
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// NearDistance returns the pick distance
func (s *Session) NearDistance() float64 {
	return s.nearDistance
}
