package editor

import "github.com/philipparndt/gosketch/pkg/geometry"

// SegmentCollection stores segments in insertion order. Indices never change:
// removing a segment leaves an empty slot behind.
type SegmentCollection struct {
	slots []*geometry.Segment
	live  int
}

// NewSegmentCollection creates an empty collection
func NewSegmentCollection() *SegmentCollection {
	return &SegmentCollection{}
}

// Add appends a segment and returns its index
func (c *SegmentCollection) Add(s *geometry.Segment) int {
	c.slots = append(c.slots, s)
	c.live++
	return len(c.slots) - 1
}

// Get returns the segment at index i. The second result is false for out of
// range and removed slots.
func (c *SegmentCollection) Get(i int) (*geometry.Segment, bool) {
	if i < 0 || i >= len(c.slots) || c.slots[i] == nil {
		return nil, false
	}
	return c.slots[i], true
}

// Remove empties slot i. It reports whether a segment was removed.
func (c *SegmentCollection) Remove(i int) bool {
	if _, ok := c.Get(i); !ok {
		return false
	}
	c.slots[i] = nil
	c.live--
	return true
}

// Len returns the number of slots, removed ones included
func (c *SegmentCollection) Len() int {
	return len(c.slots)
}

// Live returns the number of segments that have not been removed
func (c *SegmentCollection) Live() int {
	return c.live
}

// Each calls fn for every live segment in index order until fn returns false
func (c *SegmentCollection) Each(fn func(i int, s *geometry.Segment) bool) {
	for i, s := range c.slots {
		if s == nil {
			continue
		}
		if !fn(i, s) {
			return
		}
	}
}

// EachReverse is Each from the newest segment to the oldest
func (c *SegmentCollection) EachReverse(fn func(i int, s *geometry.Segment) bool) {
	for i := len(c.slots) - 1; i >= 0; i-- {
		s := c.slots[i]
		if s == nil {
			continue
		}
		if !fn(i, s) {
			return
		}
	}
}
