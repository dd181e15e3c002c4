// Package snapshot rasterizes a replayed sketch into an image
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/script"
	"golang.org/x/image/vector"
)

var (
	Background   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	SegmentColor = color.RGBA{R: 15, G: 15, B: 15, A: 255}
	MarkerColor  = color.RGBA{R: 65, G: 65, B: 65, A: 255}
	PolygonColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	PinnedColor  = color.RGBA{R: 180, G: 110, B: 70, A: 255}
	PinColor     = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	ChainColor   = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

const (
	lineWidth      = 2.0
	markerRadius   = 5.0
	markerStroke   = 4.0
	pinRadius      = 5.0
	circleSegments = 16
)

// canvas draws working space shapes onto an image whose centre is the
// working space origin
type canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	origin geometry.Point2D
}

func newCanvas(width, height int) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &canvas{
		img:    img,
		raster: vector.NewRasterizer(width, height),
		origin: geometry.NewPoint2D(float64(width)/2, float64(height)/2),
	}
}

func (c *canvas) addPolygon(points []geometry.Point2D) {
	if len(points) < 3 {
		return
	}
	first := points[0].Add(c.origin)
	c.raster.MoveTo(float32(first.X), float32(first.Y))
	for _, p := range points[1:] {
		p = p.Add(c.origin)
		c.raster.LineTo(float32(p.X), float32(p.Y))
	}
	c.raster.ClosePath()
}

func (c *canvas) fill(col color.Color) {
	c.raster.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.raster.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

// addLine adds a segment as a quad of the given width
func (c *canvas) addLine(a, b geometry.Point2D, width float64) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return
	}
	n := geometry.NewPoint2D(-d.Y, d.X).Mul(width / 2 / length)
	c.addPolygon([]geometry.Point2D{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// addRing adds a ring as an outer circle and a reversed inner circle
func (c *canvas) addRing(center geometry.Point2D, radius, stroke float64) {
	outer := geometry.CirclePoints(center, radius+stroke/2, circleSegments)
	inner := geometry.CirclePoints(center, radius-stroke/2, circleSegments)
	for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
		inner[i], inner[j] = inner[j], inner[i]
	}
	c.addPolygon(outer)
	c.addPolygon(inner)
}

// Render draws the result on a width x height image
func Render(r *script.Result, width, height int) *image.RGBA {
	c := newCanvas(width, height)

	for _, p := range r.Polygons {
		for _, t := range p.Triangles {
			c.addPolygon([]geometry.Point2D{p.Vertices[t[0]], p.Vertices[t[1]], p.Vertices[t[2]]})
		}
		if p.Parent != 0 {
			c.fill(PinnedColor)
		} else {
			c.fill(PolygonColor)
		}
	}

	for _, pin := range r.Pins {
		c.addPolygon(geometry.CirclePoints(pin.Position, pinRadius, circleSegments*2))
	}
	c.fill(PinColor)

	for _, s := range r.Segments {
		c.addLine(s.Start, s.End, lineWidth)
	}
	c.fill(SegmentColor)

	for i := 1; i < len(r.Chain); i++ {
		c.addLine(r.Chain[i-1], r.Chain[i], lineWidth)
	}
	c.fill(ChainColor)

	for _, x := range r.Intersections {
		c.addRing(x.Point, markerRadius, markerStroke)
	}
	c.fill(MarkerColor)

	return c.img
}

// WritePNG encodes img to path
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return file.Close()
}
