package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [script|stl]",
	Short: "Display statistics of a script's end state or an exported STL",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if strings.EqualFold(filepath.Ext(filename), ".stl") {
		return stlInfo(filename)
	}

	result, err := replay(filename)
	if err != nil {
		return err
	}
	m := analysis.Analyze(result)

	fmt.Println("Sketch Information")
	fmt.Println("==================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Mode: %s\n\n", result.Mode)

	fmt.Println("Statistics:")
	fmt.Printf("  Segments: %d\n", m.SegmentCount)
	fmt.Printf("  Intersections: %d\n", m.IntersectionCount)
	fmt.Printf("  Polygons: %d\n", m.PolygonCount)
	fmt.Printf("  Triangles: %d\n", m.TriangleCount)
	fmt.Printf("  Pins: %d\n", m.PinCount)
	fmt.Printf("  Total Area: %.6f square units\n\n", m.TotalArea)

	if !m.BoundingBox.IsEmpty() {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(m.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(m.BoundingBox.Max))
		fmt.Printf("  Size: %.6f x %.6f units\n\n", m.Dimensions.X, m.Dimensions.Y)
	}

	if m.SegmentCount > 0 {
		fmt.Println("Segment Lengths:")
		fmt.Printf("  Total: %.6f units\n", m.TotalLength)
		fmt.Printf("  Minimum: %.6f units\n", m.MinSegmentLength)
		fmt.Printf("  Maximum: %.6f units\n", m.MaxSegmentLength)
		fmt.Printf("  Average: %.6f units\n", m.AvgSegmentLength)

		fmt.Println("\nLongest Segments:")
		for _, s := range analysis.FindLongestSegments(m, 3) {
			fmt.Printf("  #%d %s -> %s: %s\n", s.Index, analysis.FormatPoint(s.Start), analysis.FormatPoint(s.End),
				analysis.FormatMeasurement(s.Length, "units"))
		}
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\n%d step(s) failed, run replay for details\n", len(result.Errors))
	}
	return nil
}

func stlInfo(filename string) error {
	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)
	fmt.Printf("  Facets: %d\n", model.FacetCount())
	fmt.Printf("  Footprint Area: %.6f square units\n", model.FootprintArea())

	if bounds := model.Bounds(); !bounds.IsEmpty() {
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(bounds.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(bounds.Max))
	}
	return nil
}
