package editor

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// PairKey identifies an unordered pair of segment indices
type PairKey struct {
	Lo, Hi int
}

// NewPairKey orders i and j into a key
func NewPairKey(i, j int) PairKey {
	return PairKey{Lo: min(i, j), Hi: max(i, j)}
}

// Has reports whether the pair contains index i
func (k PairKey) Has(i int) bool {
	return k.Lo == i || k.Hi == i
}

func (k PairKey) String() string {
	return fmt.Sprintf("%d-%d", k.Lo, k.Hi)
}

// IntersectionEntry is one crossing between two segments
type IntersectionEntry struct {
	Key   PairKey
	Point geometry.Point2D
}

// IntersectionIndex maps segment pairs to their crossing point
type IntersectionIndex struct {
	points map[PairKey]geometry.Point2D
}

// NewIntersectionIndex creates an empty index
func NewIntersectionIndex() *IntersectionIndex {
	return &IntersectionIndex{points: make(map[PairKey]geometry.Point2D)}
}

// Set stores the crossing point for a pair
func (x *IntersectionIndex) Set(key PairKey, p geometry.Point2D) {
	x.points[key] = p
}

// Get returns the crossing point for a pair
func (x *IntersectionIndex) Get(key PairKey) (geometry.Point2D, bool) {
	p, ok := x.points[key]
	return p, ok
}

// Purge removes every entry involving segment i and returns how many were
// removed
func (x *IntersectionIndex) Purge(i int) int {
	removed := 0
	for key := range x.points {
		if key.Has(i) {
			delete(x.points, key)
			removed++
		}
	}
	return removed
}

// Clear removes all entries
func (x *IntersectionIndex) Clear() {
	clear(x.points)
}

// Len returns the number of entries
func (x *IntersectionIndex) Len() int {
	return len(x.points)
}

// Entries returns all entries ordered by key
func (x *IntersectionIndex) Entries() []IntersectionEntry {
	keys := slices.SortedFunc(maps.Keys(x.points), func(a, b PairKey) int {
		return cmp.Or(cmp.Compare(a.Lo, b.Lo), cmp.Compare(a.Hi, b.Hi))
	})

	out := make([]IntersectionEntry, len(keys))
	for i, key := range keys {
		out[i] = IntersectionEntry{Key: key, Point: x.points[key]}
	}
	return out
}

// Points returns the crossing points ordered by key
func (x *IntersectionIndex) Points() []geometry.Point2D {
	entries := x.Entries()
	out := make([]geometry.Point2D, len(entries))
	for i, e := range entries {
		out[i] = e.Point
	}
	return out
}
