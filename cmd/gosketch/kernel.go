package main

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/spf13/cobra"
)

// pointOf converts an "x,y" flag value
func pointOf(name string, values []float64) (geometry.Point2D, error) {
	if len(values) != 2 {
		return geometry.Point2D{}, fmt.Errorf("--%s expects x,y, got %d values", name, len(values))
	}
	return geometry.NewPoint2D(values[0], values[1]), nil
}

// pointsOf converts repeated "x,y" flag values, which pflag concatenates
func pointsOf(name string, values []float64) ([]geometry.Point2D, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("--%s expects x,y pairs, got %d values", name, len(values))
	}
	points := make([]geometry.Point2D, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, geometry.NewPoint2D(values[i], values[i+1]))
	}
	return points, nil
}

var (
	segmentFlags    = map[string]*[]float64{"a1": {}, "a2": {}, "b1": {}, "b2": {}}
	polygonVertices []float64
	queryPoint      []float64
	orientFlags     = map[string]*[]float64{"p1": {}, "p2": {}, "p3": {}}
)

// pointsFromFlags reads the named point flags in order
func pointsFromFlags(flags map[string]*[]float64, names ...string) ([]geometry.Point2D, error) {
	points := make([]geometry.Point2D, len(names))
	for i, name := range names {
		p, err := pointOf(name, *flags[name])
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

var intersectCmd = &cobra.Command{
	Use:     "intersect",
	Short:   "Test whether two segments cross",
	Example: `  gosketch intersect --a1 0,0 --a2 10,10 --b1 0,10 --b2 10,0`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pointsFromFlags(segmentFlags, "a1", "a2", "b1", "b2")
		if err != nil {
			return err
		}
		x := geometry.SegmentIntersect(p[0], p[1], p[2], p[3])
		if !x.Hit {
			fmt.Println("no intersection")
			return nil
		}
		fmt.Printf("intersection at %s\n", analysis.FormatPoint(x.Point))
		return nil
	},
}

var containsCmd = &cobra.Command{
	Use:     "contains",
	Short:   "Test whether a point lies inside a polygon",
	Example: `  gosketch contains --vertex 0,0 --vertex 10,0 --vertex 10,10 --vertex 0,10 --point 5,5`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		vertices, err := pointsOf("vertex", polygonVertices)
		if err != nil {
			return err
		}
		if len(vertices) < 3 {
			return fmt.Errorf("a polygon needs at least 3 vertices, got %d", len(vertices))
		}
		p, err := pointOf("point", queryPoint)
		if err != nil {
			return err
		}
		if geometry.PointInPolygon(vertices, p) {
			fmt.Printf("%s is inside\n", analysis.FormatPoint(p))
		} else {
			fmt.Printf("%s is outside\n", analysis.FormatPoint(p))
		}
		return nil
	},
}

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Print the orientation of three points",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pointsFromFlags(orientFlags, "p1", "p2", "p3")
		if err != nil {
			return err
		}
		o := geometry.Orientation(p[0], p[1], p[2])
		fmt.Printf("%d (%s)\n", o, orientationName(o))
		return nil
	},
}

// orientationName names the turn in screen space, where +Y points down
func orientationName(o int) string {
	switch o {
	case 1:
		return "clockwise"
	case -1:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

func init() {
	rootCmd.AddCommand(intersectCmd, containsCmd, orientCmd)

	segmentUsage := map[string]string{
		"a1": "start of segment A as x,y",
		"a2": "end of segment A as x,y",
		"b1": "start of segment B as x,y",
		"b2": "end of segment B as x,y",
	}
	for _, name := range []string{"a1", "a2", "b1", "b2"} {
		intersectCmd.Flags().Float64SliceVar(segmentFlags[name], name, nil, segmentUsage[name])
		_ = intersectCmd.MarkFlagRequired(name)
	}

	containsCmd.Flags().Float64SliceVar(&polygonVertices, "vertex", nil, "polygon vertex as x,y, repeat for each vertex")
	containsCmd.Flags().Float64SliceVar(&queryPoint, "point", nil, "query point as x,y")
	_ = containsCmd.MarkFlagRequired("vertex")
	_ = containsCmd.MarkFlagRequired("point")

	for i, name := range []string{"p1", "p2", "p3"} {
		orientCmd.Flags().Float64SliceVar(orientFlags[name], name, nil, fmt.Sprintf("point %d as x,y", i+1))
		_ = orientCmd.MarkFlagRequired(name)
	}
}
