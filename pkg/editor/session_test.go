package editor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func down(x, y float64) PointerEvent {
	return PointerEvent{Position: geometry.NewPoint2D(x, y)}
}

func move(x, y float64) PointerEvent {
	return PointerEvent{Position: geometry.NewPoint2D(x, y)}
}

// draw drags out a new segment from (x1, y1) to (x2, y2)
func draw(s *Session, x1, y1, x2, y2 float64) {
	ev := down(x1, y1)
	ev.Modifiers = ModCtrl
	s.PointerDown(ev)
	s.PointerMove(move(x2, y2))
	s.PointerUp()
}

func TestPointerDownInEmptySpaceCreatesSegment(t *testing.T) {
	s := NewSession()

	s.PointerDown(down(3, 4))

	require.Equal(t, 1, s.Segments().Live())
	created, _ := s.Segments().Get(0)
	assert.Equal(t, geometry.NewPoint2D(3, 4), created.Start())
	assert.Equal(t, geometry.NewPoint2D(3, 4), created.End())
	assert.Equal(t, Selection{Index: 0, Region: geometry.RegionEnd}, s.Active())
	assert.Equal(t, StateDragging, s.State())
	assert.Equal(t, "dragging", s.State().String())

	s.PointerMove(move(13, 4))
	assert.Equal(t, 10.0, created.Length())

	s.PointerUp()
	assert.True(t, s.Active().IsNone())
	assert.Equal(t, StateIdle, s.State())
}

func TestNewSegmentIsDraggedNextToExisting(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	s.PointerDown(down(0, 10))

	assert.Equal(t, 2, s.Segments().Live())
	assert.Equal(t, Selection{Index: 1, Region: geometry.RegionEnd}, s.Active())
	assert.Equal(t, StateDragging, s.State())
}

func TestGrab(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 6, 0)

	assert.False(t, s.Grab(0, geometry.RegionNone))
	assert.False(t, s.Grab(7, geometry.RegionBody))
	assert.Equal(t, StateIdle, s.State())

	require.True(t, s.Grab(0, geometry.RegionBody))
	assert.Equal(t, Selection{Index: 0, Region: geometry.RegionBody}, s.Active())
	assert.Equal(t, StateDragging, s.State())

	s.PointerMove(PointerEvent{Position: geometry.NewPoint2D(3, 20), PixelDX: 0, PixelDY: 20})
	s.PointerUp()
	grabbed, _ := s.Segments().Get(0)
	assert.Equal(t, geometry.NewPoint2D(0, 20), grabbed.Start())
	assert.Equal(t, geometry.NewPoint2D(6, 20), grabbed.End())

	require.True(t, s.Grab(0, geometry.RegionStart))
	require.NoError(t, s.Delete())
	assert.False(t, s.Grab(0, geometry.RegionBody))
}

func TestPointerDownNearSegmentSelectsRegion(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	tests := []struct {
		name   string
		x, y   float64
		region geometry.Region
	}{
		{"start", 1, 1, geometry.RegionStart},
		{"end", 98, -1, geometry.RegionEnd},
		{"body", 50, 3, geometry.RegionBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.PointerDown(down(tt.x, tt.y))
			defer s.PointerUp()

			assert.Equal(t, Selection{Index: 0, Region: tt.region}, s.Active())
			assert.Equal(t, StateDragging, s.State())
			assert.Equal(t, 1, s.Segments().Len())
		})
	}
}

func TestCtrlForcesNewSegment(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	ev := down(50, 0)
	ev.Modifiers = ModCtrl | ModShift
	s.PointerDown(ev)

	assert.Equal(t, 2, s.Segments().Live())
	assert.Equal(t, Selection{Index: 1, Region: geometry.RegionEnd}, s.Active())
}

func TestPickPrefersNewestSegment(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)
	draw(s, 0, 2, 100, 2)

	s.PointerDown(down(50, 1))
	assert.Equal(t, 1, s.Active().Index)
}

func TestDragEndpoints(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)
	segment, _ := s.Segments().Get(0)

	s.PointerDown(down(0, 0))
	s.PointerMove(move(-20, 10))
	s.PointerUp()
	assert.Equal(t, geometry.NewPoint2D(-20, 10), segment.Start())

	s.PointerDown(down(100, 0))
	s.PointerMove(move(80, 40))
	s.PointerUp()
	assert.Equal(t, geometry.NewPoint2D(80, 40), segment.End())
	assert.InDelta(t, segment.Start().Distance(segment.End()), segment.Length(), 1e-12)
}

func TestBodyDragUsesPixelDelta(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)
	segment, _ := s.Segments().Get(0)

	s.PointerDown(down(50, 0))
	require.Equal(t, geometry.RegionBody, s.Active().Region)

	// The working space position is ignored for body drags
	s.PointerMove(PointerEvent{Position: geometry.NewPoint2D(500, 500), PixelDX: 4, PixelDY: -2})
	s.PointerUp()

	assert.Equal(t, geometry.NewPoint2D(4, -2), segment.Start())
	assert.Equal(t, geometry.NewPoint2D(104, -2), segment.End())
}

func TestMoveWithoutSelectionIsNoop(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)
	segment, _ := s.Segments().Get(0)

	s.PointerMove(PointerEvent{Position: geometry.NewPoint2D(7, 7), PixelDX: 3, PixelDY: 3})

	assert.Equal(t, geometry.NewPoint2D(0, 0), segment.Start())
	assert.Equal(t, geometry.NewPoint2D(100, 0), segment.End())
	assert.Equal(t, StateIdle, s.State())
}

func TestCrossingSegmentsAreIndexed(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 10, 10)
	draw(s, 0, 10, 10, 0)

	entries := s.Intersections().Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, PairKey{Lo: 0, Hi: 1}, entries[0].Key)
	assert.InDelta(t, 5.0, entries[0].Point.X, 1e-12)
	assert.InDelta(t, 5.0, entries[0].Point.Y, 1e-12)
}

func TestDeleteRemovesIntersections(t *testing.T) {
	for _, victim := range []geometry.Point2D{geometry.NewPoint2D(1, 1), geometry.NewPoint2D(1, 9)} {
		s := NewSession()
		draw(s, 0, 0, 10, 10)
		draw(s, 0, 10, 10, 0)
		require.Equal(t, 1, s.Intersections().Len())

		s.Hover(victim)
		require.NoError(t, s.Delete())

		assert.Equal(t, 0, s.Intersections().Len())
		assert.Equal(t, 1, s.Segments().Live())
		assert.Equal(t, 2, s.Segments().Len())
		assert.True(t, s.Hovered().IsNone())
	}
}

func TestDeleteActiveSegment(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)
	draw(s, 0, 50, 100, 50)

	s.PointerDown(down(50, 50))
	require.NoError(t, s.Delete())

	assert.Equal(t, StateIdle, s.State())
	assert.True(t, s.Active().IsNone())
	_, ok := s.Segments().Get(1)
	assert.False(t, ok)
	_, ok = s.Segments().Get(0)
	assert.True(t, ok)
}

func TestDeleteWithoutSelection(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	s.Hover(geometry.NewPoint2D(50, 50))
	assert.ErrorIs(t, s.Delete(), ErrNothingSelected)
	assert.Equal(t, 1, s.Segments().Live())
}

func TestDeleteAfterHoveredSegmentMovedAway(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	s.Hover(geometry.NewPoint2D(50, 2))
	require.Equal(t, Selection{Index: 0, Region: geometry.RegionBody}, s.Hovered())

	// drag the start far away without a hover update in between
	s.PointerDown(down(0, 0))
	s.PointerMove(move(0, 50))
	s.PointerUp()

	assert.True(t, s.Hovered().IsNone())
	assert.ErrorIs(t, s.Delete(), ErrNothingSelected)
	assert.Equal(t, 1, s.Segments().Live())
}

func TestHoveredRegionFollowsMovedSegment(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 100, 0)

	s.Hover(geometry.NewPoint2D(50, 0))
	require.Equal(t, geometry.RegionBody, s.Hovered().Region)

	s.PointerDown(down(100, 0))
	s.PointerMove(move(50, 0))
	s.PointerUp()

	assert.Equal(t, Selection{Index: 0, Region: geometry.RegionEnd}, s.Hovered())
}

func TestNonFiniteSegmentIsLeftOutOfIndex(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 10, 10)

	require.NotPanics(t, func() {
		draw(s, 0, 10, math.NaN(), 0)
		draw(s, 0, 5, math.Inf(1), 5)
	})
	assert.Equal(t, 3, s.Segments().Live())
	assert.Equal(t, 0, s.Intersections().Len())

	require.NotPanics(t, s.Rebuild)
	assert.Equal(t, 0, s.Intersections().Len())
}

func TestDeleteKeepsOtherIndices(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 10, 10)
	draw(s, 0, 10, 10, 0)
	draw(s, 0, 5, 10, 5)
	draw(s, 5, 0, 5, 100)
	require.Equal(t, 6, s.Intersections().Len())

	s.Hover(geometry.NewPoint2D(-3, 5))
	require.Equal(t, 2, s.Hovered().Index)
	require.NoError(t, s.Delete())

	var keys []PairKey
	for _, e := range s.Intersections().Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []PairKey{{0, 1}, {0, 3}, {1, 3}}, keys)

	// Dragging a segment after the delete skips the empty slot
	s.PointerDown(down(5, 100))
	s.PointerMove(move(100, -10))
	s.PointerUp()
	assert.Equal(t, []geometry.Point2D{geometry.NewPoint2D(5, 5)}, s.Intersections().Points())
}

func TestDraggingApartClearsIntersection(t *testing.T) {
	s := NewSession()
	draw(s, 0, 0, 10, 10)
	draw(s, 0, 10, 10, 0)

	s.PointerDown(down(10, 0))
	s.PointerMove(move(0, 20))
	s.PointerUp()

	assert.Equal(t, 0, s.Intersections().Len())
}

func TestIndexMatchesFullRebuild(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coord := func() float64 { return float64(rng.Intn(400) - 200) }

	s := NewSession()
	for step := 0; step < 300; step++ {
		switch rng.Intn(5) {
		case 0, 1:
			draw(s, coord(), coord(), coord(), coord())
		case 2:
			s.PointerDown(down(coord(), coord()))
			s.PointerMove(PointerEvent{
				Position: geometry.NewPoint2D(coord(), coord()),
				PixelDX:  float64(rng.Intn(20) - 10),
				PixelDY:  float64(rng.Intn(20) - 10),
			})
			s.PointerUp()
		case 3:
			s.Hover(geometry.NewPoint2D(coord(), coord()))
			_ = s.Delete()
		case 4:
			s.PointerMove(move(coord(), coord()))
		}
	}

	incremental := s.Intersections().Entries()
	s.Rebuild()
	rebuilt := s.Intersections().Entries()

	require.Equal(t, len(rebuilt), len(incremental))
	for i := range rebuilt {
		assert.Equal(t, rebuilt[i].Key, incremental[i].Key)
		assert.InDelta(t, rebuilt[i].Point.X, incremental[i].Point.X, 1e-9)
		assert.InDelta(t, rebuilt[i].Point.Y, incremental[i].Point.Y, 1e-9)
	}

	// Brute force over every live pair
	brute := 0
	segments := s.Segments()
	segments.Each(func(i int, a *geometry.Segment) bool {
		segments.Each(func(j int, b *geometry.Segment) bool {
			if j > i && a.Intersect(b).Hit {
				brute++
			}
			return true
		})
		return true
	})
	assert.Equal(t, brute, len(rebuilt))
}
