package viewer

import (
	"image"
	"image/color"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

func TestFillTriangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{R: 255, A: 255}

	fillTriangle(img, geometry.NewTriangle(
		geometry.NewPoint2D(2, 2),
		geometry.NewPoint2D(18, 2),
		geometry.NewPoint2D(2, 18),
	), red)

	if img.RGBAAt(4, 4) != red {
		t.Errorf("Expected (4, 4) to be filled, got %v", img.RGBAAt(4, 4))
	}
	if img.RGBAAt(16, 16) == red {
		t.Error("Expected (16, 16) outside the triangle to stay empty")
	}
	if img.RGBAAt(0, 0) == red {
		t.Error("Expected (0, 0) to stay empty")
	}
}

func TestFillTriangleClipsToImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{B: 255, A: 255}

	fillTriangle(img, geometry.NewTriangle(
		geometry.NewPoint2D(-50, -50),
		geometry.NewPoint2D(50, -50),
		geometry.NewPoint2D(-50, 50),
	), blue)

	if img.RGBAAt(0, 0) != blue {
		t.Errorf("Expected (0, 0) to be filled, got %v", img.RGBAAt(0, 0))
	}
	if img.RGBAAt(9, 9) == blue {
		t.Error("Expected (9, 9) beyond the hypotenuse to stay empty")
	}
}

func TestRasterizePolygonsShiftsOrigin(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	img := rasterizePolygons(40, 40, geometry.NewPoint2D(20, 20), []polygonFill{{
		triangles: []geometry.Triangle{geometry.NewTriangle(
			geometry.NewPoint2D(-10, -10),
			geometry.NewPoint2D(10, -10),
			geometry.NewPoint2D(-10, 10),
		)},
		color: green,
	}})

	if img.RGBAAt(15, 15) != green {
		t.Errorf("Expected (15, 15) to be filled, got %v", img.RGBAAt(15, 15))
	}
	if img.RGBAAt(5, 5) == green {
		t.Error("Expected (5, 5) to stay empty")
	}
}
