package geometry

import "math"

// CirclePoints generates n evenly spaced points on a circle
//
//	x = cx + r*cos(θ)
//	y = cy + r*sin(θ)
func CirclePoints(center Point2D, radius float64, n int) []Point2D {
	if n < 3 {
		n = 3
	}
	points := make([]Point2D, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2.0 * math.Pi / float64(n)
		points[i] = Point2D{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// Ring returns a triangle strip outlining a circle of the given stroke width.
// Vertices alternate between the inner and the outer circle and the strip
// closes on itself, so it holds 2*(n+1) points.
func Ring(center Point2D, radius, strokeWidth float64, n int) []Point2D {
	inner := CirclePoints(center, radius-strokeWidth/2, n)
	outer := CirclePoints(center, radius+strokeWidth/2, n)

	strip := make([]Point2D, 0, 2*(len(inner)+1))
	for i := 0; i <= len(inner); i++ {
		j := i % len(inner)
		strip = append(strip, inner[j], outer[j])
	}
	return strip
}
