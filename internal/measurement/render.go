package measurement

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

// labelOffset lifts segment labels above the midpoint, in pixels
const labelOffset = 18

// SegmentLabels builds a length label at the midpoint of every segment.
// hovered and active are segment indices, or -1.
func SegmentLabels(segments []Segment, project Projector, hovered, active int) []Label {
	labels := make([]Label, 0, len(segments))
	for _, s := range segments {
		mid := s.Start.Add(s.End).Mul(0.5)
		pos := project(mid)
		pos.Y -= labelOffset

		priority := PriorityNormal
		switch s.Index {
		case active:
			priority = PrioritySelected
		case hovered:
			priority = PriorityHovered
		}

		labels = append(labels, Label{
			Text:       fmt.Sprintf("%.1f", s.Start.Distance(s.End)),
			ScreenPos:  pos,
			BaseColor:  segmentColor,
			HoverColor: segmentHoverColor,
			Priority:   priority,
			Index:      s.Index,
		})
	}
	return labels
}

// IntersectionLabel labels a crossing with its coordinates, below the marker
func IntersectionLabel(p geometry.Point2D, project Projector) Label {
	pos := project(p)
	pos.Y += labelOffset / 2
	return Label{
		Text:       fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y),
		ScreenPos:  pos,
		BaseColor:  markerColor,
		HoverColor: markerColor,
		Priority:   PriorityHovered,
		Index:      -1,
	}
}

// Layout orders labels by priority and drops any label whose bounds overlap
// one that was already placed. measure returns the text size of a label.
func Layout(labels []Label, measure func(Label) rl.Vector2, padding float32) ([]Label, []rl.Rectangle) {
	sorted := make([]Label, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	placed := make([]Label, 0, len(sorted))
	rects := make([]rl.Rectangle, 0, len(sorted))
	for _, l := range sorted {
		rect := l.Bounds(measure(l), padding)
		if overlapsAny(rect, rects) {
			continue
		}
		placed = append(placed, l)
		rects = append(rects, rect)
	}
	return placed, rects
}

// Draw places and renders labels with the given font. The returned labels
// and rectangles line up for LabelAt.
func Draw(labels []Label, font rl.Font, fontSize, padding float32) ([]Label, []rl.Rectangle) {
	placed, rects := Layout(labels, func(l Label) rl.Vector2 {
		return rl.MeasureTextEx(font, l.Text, fontSize, 1)
	}, padding)

	// lowest priority first so selected labels end up on top
	for i := len(placed) - 1; i >= 0; i-- {
		placed[i].Draw(font, fontSize, padding)
	}
	return placed, rects
}

// LabelAt returns the index of the labelled segment whose rectangle
// contains pos, or -1
func LabelAt(labels []Label, rects []rl.Rectangle, pos rl.Vector2) int {
	for i, r := range rects {
		if i < len(labels) && pos.X >= r.X && pos.X <= r.X+r.Width && pos.Y >= r.Y && pos.Y <= r.Y+r.Height {
			return labels[i].Index
		}
	}
	return -1
}

func overlapsAny(r rl.Rectangle, others []rl.Rectangle) bool {
	for _, o := range others {
		if r.X < o.X+o.Width && o.X < r.X+r.Width &&
			r.Y < o.Y+o.Height && o.Y < r.Y+r.Height {
			return true
		}
	}
	return false
}
