package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// fillTriangle fills a triangle on an image using a scanline algorithm
func fillTriangle(img *image.RGBA, t geometry.Triangle, col color.RGBA) {
	vertices := []geometry.Point2D{t.A, t.B, t.C}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1].Y > vertices[2].Y {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0].Y > vertices[1].Y {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 := vertices[0].X, vertices[0].Y
	x2, y2 := vertices[1].X, vertices[1].Y
	x3, y3 := vertices[2].X, vertices[2].Y

	bounds := img.Bounds()

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)
		intersections := make([]float64, 0, 3)

		// Edge 1-2
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}

		// Edge 2-3
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}

		// Edge 1-3
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}

		if len(intersections) < 2 {
			continue
		}

		xStart := math.Max(0, math.Min(intersections[0], intersections[1]))
		xEnd := math.Min(float64(bounds.Max.X-1), math.Max(intersections[0], intersections[1]))
		for x := int(math.Ceil(xStart)); x <= int(xEnd); x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// rasterizePolygons paints the triangles of every polygon, shifted by
// origin, onto a transparent image
func rasterizePolygons(width, height int, origin geometry.Point2D, polygons []polygonFill) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, p := range polygons {
		for _, t := range p.triangles {
			shifted := geometry.NewTriangle(t.A.Add(origin), t.B.Add(origin), t.C.Add(origin))
			fillTriangle(img, shifted, p.color)
		}
	}
	return img
}

type polygonFill struct {
	triangles []geometry.Triangle
	color     color.RGBA
}
