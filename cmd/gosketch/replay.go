package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/editor"
	"github.com/philipparndt/gosketch/pkg/script"
	"github.com/spf13/cobra"
)

var replayJSON bool

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay a YAML script of pointer events",
	Long: `Feed the pointer events of a script into a segment or polygon session and
print the resulting segments, intersections, polygons and pins.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "print the result as JSON")
}

func runReplay(cmd *cobra.Command, args []string) error {
	result, err := replay(args[0])
	if err != nil {
		return err
	}

	if replayJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(os.Stdout, result)
	return nil
}

// replay loads and runs a script with the configured session options
func replay(path string) (*script.Result, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}

	opts := append(cfg.SessionOptions(logger), cfg.PolygonOptions(logger)...)
	result, err := s.Run(logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to replay %s: %w", path, err)
	}
	return result, nil
}

func printResult(w io.Writer, result *script.Result) {
	fmt.Fprintf(w, "Mode: %s (%d steps)\n", result.Mode, result.Steps)

	if len(result.Segments) > 0 {
		fmt.Fprintf(w, "\nSegments (%d):\n", len(result.Segments))
		for _, s := range result.Segments {
			fmt.Fprintf(w, "  #%-3d %s -> %s  length %s\n", s.Index,
				analysis.FormatPoint(s.Start), analysis.FormatPoint(s.End),
				analysis.FormatMeasurement(s.Length(), "units"))
		}
	}

	if len(result.Intersections) > 0 {
		fmt.Fprintf(w, "\nIntersections (%d):\n", len(result.Intersections))
		for _, x := range result.Intersections {
			fmt.Fprintf(w, "  %s  %s\n", editor.NewPairKey(x.A, x.B), analysis.FormatPoint(x.Point))
		}
	}

	if len(result.Polygons) > 0 {
		fmt.Fprintf(w, "\nPolygons (%d):\n", len(result.Polygons))
		for _, p := range result.Polygons {
			fmt.Fprintf(w, "  #%-3d %d vertices, %d triangles, area %s", p.ID,
				len(p.Vertices), len(p.Triangles), analysis.FormatMeasurement(p.Area, "square units"))
			if p.Parent != 0 {
				fmt.Fprintf(w, ", pinned to #%d", p.Parent)
			}
			fmt.Fprintln(w)
		}
	}

	if len(result.Pins) > 0 {
		fmt.Fprintf(w, "\nPins (%d):\n", len(result.Pins))
		for _, pin := range result.Pins {
			fmt.Fprintf(w, "  #%d -> #%d at %s\n", pin.Child, pin.Parent, analysis.FormatPoint(pin.Position))
		}
	}

	if len(result.Chain) > 0 {
		fmt.Fprintf(w, "\nOpen chain: %d vertices\n", len(result.Chain))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nStep errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  step %d (%s): %s\n", e.Step, e.Action, e.Error)
		}
	}
}
