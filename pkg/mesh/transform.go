package mesh

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"gonum.org/v1/gonum/mat"
)

// Transform is a 2D affine transform stored as a 3x3 homogeneous matrix.
// The zero value is the identity.
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// Translation returns a transform moving points by d
func Translation(d geometry.Point2D) Transform {
	return Transform{m: mat.NewDense(3, 3, []float64{
		1, 0, d.X,
		0, 1, d.Y,
		0, 0, 1,
	})}
}

// Rotation returns a rotation by rad around the origin
func Rotation(rad float64) Transform {
	sin, cos := math.Sincos(rad)
	return Transform{m: mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})}
}

// RotationAbout returns a rotation by rad around pivot
func RotationAbout(pivot geometry.Point2D, rad float64) Transform {
	return Translation(pivot).Mul(Rotation(rad)).Mul(Translation(pivot.Mul(-1)))
}

func (t Transform) dense() *mat.Dense {
	if t.m == nil {
		return Identity().m
	}
	return t.m
}

// Mul returns t·other, the transform applying other first and t second
func (t Transform) Mul(other Transform) Transform {
	var out mat.Dense
	out.Mul(t.dense(), other.dense())
	return Transform{m: &out}
}

// Inverse returns the inverse transform
func (t Transform) Inverse() (Transform, error) {
	var out mat.Dense
	if err := out.Inverse(t.dense()); err != nil {
		return Transform{}, fmt.Errorf("failed to invert transform: %w", err)
	}
	return Transform{m: &out}, nil
}

// Apply maps p through the transform
func (t Transform) Apply(p geometry.Point2D) geometry.Point2D {
	m := t.dense()
	return geometry.Point2D{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2),
	}
}

// ApplyAll maps every point through the transform
func (t Transform) ApplyAll(points []geometry.Point2D) []geometry.Point2D {
	out := make([]geometry.Point2D, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// Angle returns the rotation angle of the linear part in radians
func (t Transform) Angle() float64 {
	m := t.dense()
	return math.Atan2(m.At(1, 0), m.At(0, 0))
}

func (t Transform) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.dense(), mat.Squeeze()))
}
