package editor

import (
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// boxPadding widens every box so that touching boxes overlap; the tree only
// reports strict overlaps
const boxPadding = 1.0

// segmentBox is the tree entry for one segment. The rectangle is a snapshot
// taken at insertion so the entry can be found again after the segment moved.
type segmentBox struct {
	index int
	rect  rtreego.Rect
}

func (b *segmentBox) Bounds() rtreego.Rect {
	return b.rect
}

func sameSegment(a, b rtreego.Spatial) bool {
	return a.(*segmentBox).index == b.(*segmentBox).index
}

// broadPhase keeps an R-tree of segment bounding boxes to narrow down
// intersection candidates
type broadPhase struct {
	tree  *rtreego.Rtree
	boxes map[int]*segmentBox
}

func newBroadPhase() *broadPhase {
	return &broadPhase{
		tree:  rtreego.NewTree(2, 25, 50),
		boxes: make(map[int]*segmentBox),
	}
}

// segmentRect fails for coordinates without a finite box, such as NaN
func segmentRect(s *geometry.Segment) (rtreego.Rect, error) {
	bounds := s.Bounds()
	for _, v := range []float64{bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rtreego.Rect{}, fmt.Errorf("bounds are not finite: %v", bounds)
		}
	}
	scale := math.Max(
		math.Max(math.Abs(bounds.Min.X), math.Abs(bounds.Max.X)),
		math.Max(math.Abs(bounds.Min.Y), math.Abs(bounds.Max.Y)),
	)
	pad := boxPadding + scale*1e-9
	size := bounds.Size()

	rect, err := rtreego.NewRect(
		rtreego.Point{bounds.Min.X - pad, bounds.Min.Y - pad},
		[]float64{size.X + 2*pad, size.Y + 2*pad},
	)
	if err != nil {
		return rtreego.Rect{}, fmt.Errorf("failed to create box for %v: %w", bounds, err)
	}
	return rect, nil
}

// Update inserts segment i or moves its box to the current position. A
// segment without a valid box is left out of the tree.
func (b *broadPhase) Update(i int, s *geometry.Segment) error {
	b.Remove(i)
	rect, err := segmentRect(s)
	if err != nil {
		return err
	}
	box := &segmentBox{index: i, rect: rect}
	b.boxes[i] = box
	b.tree.Insert(box)
	return nil
}

// Remove drops segment i from the tree
func (b *broadPhase) Remove(i int) {
	box, ok := b.boxes[i]
	if !ok {
		return
	}
	b.tree.DeleteWithComparator(box, sameSegment)
	delete(b.boxes, i)
}

// Candidates returns the indices whose boxes overlap the box of s, in
// ascending order
func (b *broadPhase) Candidates(s *geometry.Segment) ([]int, error) {
	rect, err := segmentRect(s)
	if err != nil {
		return nil, err
	}
	hits := b.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, hit := range hits {
		out = append(out, hit.(*segmentBox).index)
	}
	slices.Sort(out)
	return out, nil
}

// Reset empties the tree
func (b *broadPhase) Reset() {
	b.tree = rtreego.NewTree(2, 25, 50)
	clear(b.boxes)
}
