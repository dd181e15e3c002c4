package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/script"
)

// SegmentInfo contains information about a segment in the sketch
type SegmentInfo struct {
	Index  int
	Start  geometry.Point2D
	End    geometry.Point2D
	Length float64
}

// MeasurementResult contains various measurements of a replayed sketch
type MeasurementResult struct {
	BoundingBox       geometry.BoundingBox
	Dimensions        geometry.Point2D
	SegmentCount      int
	IntersectionCount int
	PolygonCount      int
	PinCount          int
	TriangleCount     int
	TotalArea         float64
	TotalLength       float64
	MinSegmentLength  float64
	MaxSegmentLength  float64
	AvgSegmentLength  float64
	AllSegments       []SegmentInfo
}

// Analyze measures the end state of a replay
func Analyze(r *script.Result) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:       r.Bounds(),
		SegmentCount:      len(r.Segments),
		IntersectionCount: len(r.Intersections),
		PolygonCount:      len(r.Polygons),
		PinCount:          len(r.Pins),
		AllSegments:       make([]SegmentInfo, 0, len(r.Segments)),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	for _, p := range r.Polygons {
		result.TotalArea += p.Area
		result.TriangleCount += len(p.Triangles)
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	for _, s := range r.Segments {
		length := s.Length()
		result.AllSegments = append(result.AllSegments, SegmentInfo{
			Index:  s.Index,
			Start:  s.Start,
			End:    s.End,
			Length: length,
		})

		result.TotalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if result.SegmentCount > 0 {
		result.MinSegmentLength = minLength
		result.MaxSegmentLength = maxLength
		result.AvgSegmentLength = result.TotalLength / float64(result.SegmentCount)
	}

	return result
}

// FindLongestSegments returns the N longest segments
func FindLongestSegments(result *MeasurementResult, count int) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.AllSegments))
	copy(segments, result.AllSegments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length > segments[j].Length
	})

	if count > len(segments) {
		count = len(segments)
	}

	return segments[:count]
}

// FindShortestSegments returns the N shortest segments
func FindShortestSegments(result *MeasurementResult, count int) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.AllSegments))
	copy(segments, result.AllSegments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length < segments[j].Length
	})

	if count > len(segments) {
		count = len(segments)
	}

	return segments[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point2D) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
