package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/script"
	"github.com/philipparndt/gosketch/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportBinary bool
)

var errNoPolygons = errors.New("script produced no polygons")

var exportCmd = &cobra.Command{
	Use:   "export-stl [script]",
	Short: "Export the triangulated polygons of a script as STL",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "sketch.stl", "output STL file")
	exportCmd.Flags().BoolVar(&exportBinary, "binary", false, "write binary STL instead of ASCII")
}

func runExport(cmd *cobra.Command, args []string) error {
	result, err := replay(args[0])
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	model := polygonModel(name, result)
	if model.FacetCount() == 0 {
		return errNoPolygons
	}

	if err := stl.WriteFile(exportOutput, model, exportBinary); err != nil {
		return err
	}

	fmt.Printf("Wrote %d facets to %s\n", model.FacetCount(), exportOutput)
	return nil
}

// polygonModel flattens the world triangles of all polygons into one model
func polygonModel(name string, result *script.Result) *stl.Model {
	var triangles []geometry.Triangle
	for _, p := range result.Polygons {
		for _, t := range p.Triangles {
			triangles = append(triangles, geometry.NewTriangle(p.Vertices[t[0]], p.Vertices[t[1]], p.Vertices[t[2]]))
		}
	}
	return stl.FromTriangles(name, triangles)
}
