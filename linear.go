package tubular

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Linear is a [Basis] that connects successive points with line segments.
// Radii are interpolated linearly as well. If the strand is closed, a final
// segment connects the last point back to the first.
//
// The native parameter spends an equal share of [0, 1] on every segment,
// regardless of its length.
//
// Linear deliberately doesn't implement [Tangenter]: its derivative jumps at
// every point, while the finite difference estimate of [Curve.TangentAtT]
// averages the neighboring segments there.
type Linear Strand

var _ Basis = Linear{}

// LinearBasis is a [BasisFunc] for [Linear].
func LinearBasis(s Strand) Basis {
	return Linear(s)
}

// Segments returns the number of line segments.
func (l Linear) Segments() int {
	n := len(l.Points) - 1
	if l.Closed && len(l.Points) > 1 {
		n++
	}
	return n
}

// segment returns the index of the segment containing t, and the position
// within that segment.
func (l Linear) segment(t float64) (int, float64) {
	n := l.Segments()
	if n <= 0 {
		return 0, 0
	}
	p := clamp(t, 0, 1) * float64(n)
	i := min(int(math.Floor(p)), n-1)
	return i, p - float64(i)
}

func (l Linear) PointAtT(t float64) v3.Vec {
	i, w := l.segment(t)
	if l.Segments() <= 0 {
		return l.Points[0]
	}
	return lerpVec(l.Points[i], l.Points[(i+1)%len(l.Points)], w)
}

func (l Linear) RadiusAtT(t float64) float64 {
	i, w := l.segment(t)
	if l.Segments() <= 0 {
		return l.Radii[0]
	}
	return lerp(l.Radii[i], l.Radii[(i+1)%len(l.Radii)], w)
}
