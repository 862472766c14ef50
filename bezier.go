package tubular

import (
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/exp/constraints"
)

// Bezier is a [Basis] that treats the points as the control polygon of a
// single Bézier curve of degree len(Points)-1. The curve only passes through
// the first and last points. Radii are blended with the same weights as the
// points.
//
// A closed Bezier repeats the first point as its final control point, so it
// ends where it starts, but generally with a different tangent.
type Bezier struct {
	Points []v3.Vec
	Radii  []float64
}

var _ Basis = Bezier{}
var _ Tangenter = Bezier{}

// BezierBasis is a [BasisFunc] for [Bezier].
func BezierBasis(s Strand) Basis {
	b := Bezier{Points: s.Points, Radii: s.Radii}
	if s.Closed && len(s.Points) > 1 {
		b.Points = append(slices.Clip(s.Points), s.Points[0])
		b.Radii = append(slices.Clip(s.Radii), s.Radii[0])
	}
	return b
}

// Degree returns the degree of the curve.
func (b Bezier) Degree() int {
	return len(b.Points) - 1
}

// PointAtT evaluates the curve using de Casteljau's algorithm.
func (b Bezier) PointAtT(t float64) v3.Vec {
	t = clamp(t, 0, 1)
	tmp := slices.Clone(b.Points)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := range n {
			tmp[i] = lerpVec(tmp[i], tmp[i+1], t)
		}
	}
	return tmp[0]
}

func (b Bezier) RadiusAtT(t float64) float64 {
	return deCasteljau(b.Radii, clamp(t, 0, 1))
}

// TangentAtT implements [Tangenter]. It evaluates the hodograph, the Bézier
// curve of one degree less whose control points are the scaled differences
// of successive control points.
func (b Bezier) TangentAtT(t float64) v3.Vec {
	n := b.Degree()
	if n < 1 {
		return v3.Vec{}
	}
	deriv := make([]v3.Vec, n)
	for i := range deriv {
		deriv[i] = b.Points[i+1].Sub(b.Points[i]).MulScalar(float64(n))
	}
	return Bezier{Points: deriv}.PointAtT(t)
}

// deCasteljau evaluates the scalar Bézier polynomial with the given
// coefficients at t.
func deCasteljau[T constraints.Float](coeffs []T, t T) T {
	tmp := slices.Clone(coeffs)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := range n {
			tmp[i] = lerp(tmp[i], tmp[i+1], t)
		}
	}
	return tmp[0]
}
