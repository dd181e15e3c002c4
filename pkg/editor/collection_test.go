package editor

import (
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func seg(x1, y1, x2, y2 float64) *geometry.Segment {
	return geometry.NewSegment(geometry.NewPoint2D(x1, y1), geometry.NewPoint2D(x2, y2))
}

func TestSegmentCollectionTombstones(t *testing.T) {
	c := NewSegmentCollection()
	segments := []*geometry.Segment{
		seg(0, 0, 1, 0),
		seg(0, 1, 1, 1),
		seg(0, 2, 1, 2),
		seg(0, 3, 1, 3),
	}
	for i, s := range segments {
		assert.Equal(t, i, c.Add(s))
	}

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.False(t, c.Remove(17))

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 3, c.Live())

	_, ok := c.Get(1)
	assert.False(t, ok)
	for _, i := range []int{0, 2, 3} {
		s, ok := c.Get(i)
		assert.True(t, ok)
		assert.Same(t, segments[i], s)
	}

	var forward, backward []int
	c.Each(func(i int, _ *geometry.Segment) bool {
		forward = append(forward, i)
		return true
	})
	c.EachReverse(func(i int, _ *geometry.Segment) bool {
		backward = append(backward, i)
		return true
	})
	assert.Equal(t, []int{0, 2, 3}, forward)
	assert.Equal(t, []int{3, 2, 0}, backward)

	// New segments never reuse a removed slot
	assert.Equal(t, 4, c.Add(seg(0, 4, 1, 4)))
}

func TestSegmentCollectionEachStops(t *testing.T) {
	c := NewSegmentCollection()
	for i := 0; i < 5; i++ {
		c.Add(seg(0, float64(i), 1, float64(i)))
	}

	visited := 0
	c.Each(func(i int, _ *geometry.Segment) bool {
		visited++
		return i < 2
	})
	assert.Equal(t, 3, visited)
}

func TestIntersectionIndex(t *testing.T) {
	x := NewIntersectionIndex()
	x.Set(NewPairKey(3, 1), geometry.NewPoint2D(1, 1))
	x.Set(NewPairKey(0, 2), geometry.NewPoint2D(2, 2))
	x.Set(NewPairKey(1, 2), geometry.NewPoint2D(3, 3))

	assert.Equal(t, PairKey{Lo: 1, Hi: 3}, NewPairKey(3, 1))
	assert.Equal(t, "1-3", NewPairKey(3, 1).String())

	p, ok := x.Get(PairKey{Lo: 1, Hi: 3})
	assert.True(t, ok)
	assert.Equal(t, geometry.NewPoint2D(1, 1), p)

	entries := x.Entries()
	assert.Equal(t, []PairKey{{0, 2}, {1, 2}, {1, 3}}, []PairKey{entries[0].Key, entries[1].Key, entries[2].Key})

	assert.Equal(t, 2, x.Purge(1))
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, []geometry.Point2D{geometry.NewPoint2D(2, 2)}, x.Points())
}
