package tubular

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// CatmullRomType selects the knot spacing of a [CatmullRom] spline.
type CatmullRomType int

const (
	// Knots spaced by the square root of the chord length. Avoids cusps and
	// self-intersections within a segment.
	Centripetal CatmullRomType = iota
	// Knots spaced by the chord length.
	Chordal
	// Evenly spaced knots, with tangents scaled by the tension.
	Uniform
)

func (typ CatmullRomType) String() string {
	switch typ {
	case Centripetal:
		return "centripetal"
	case Chordal:
		return "chordal"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("CatmullRomType(%d)", int(typ))
	}
}

// minKnotSpacing is the knot spacing below which a segment is considered
// degenerate.
const minKnotSpacing = 1e-4

// CatmullRom is a [Basis] that blends the points with a cubic Catmull-Rom
// spline. The spline passes through every point; the native parameter spends
// an equal share of [0, 1] on every segment.
//
// Open splines extrapolate a phantom point beyond either end. Closed splines
// wrap around and are C¹ continuous at the seam.
//
// Radii are interpolated linearly within each segment.
type CatmullRom struct {
	Strand
	Type CatmullRomType
	// Tension of a [Uniform] spline. 0.5 yields the classic Catmull-Rom
	// spline.
	Tension float64
}

var _ Basis = CatmullRom{}
var _ Tangenter = CatmullRom{}

// CatmullRomBasis returns a [BasisFunc] for [CatmullRom] splines of the
// given type and tension.
func CatmullRomBasis(typ CatmullRomType, tension float64) BasisFunc {
	return func(s Strand) Basis {
		return CatmullRom{Strand: s, Type: typ, Tension: tension}
	}
}

// hermite is a cubic c0 + c1 t + c2 t² + c3 t³ in three dimensions.
type hermite struct {
	c0, c1, c2, c3 v3.Vec
}

// newHermite returns the cubic from x0 to x1 with derivatives t0 and t1 at
// its ends.
func newHermite(x0, x1, t0, t1 v3.Vec) hermite {
	return hermite{
		c0: x0,
		c1: t0,
		c2: x0.MulScalar(-3).Add(x1.MulScalar(3)).Sub(t0.MulScalar(2)).Sub(t1),
		c3: x0.MulScalar(2).Sub(x1.MulScalar(2)).Add(t0).Add(t1),
	}
}

func (h hermite) eval(t float64) v3.Vec {
	return h.c0.Add(h.c1.Add(h.c2.Add(h.c3.MulScalar(t)).MulScalar(t)).MulScalar(t))
}

func (h hermite) deriv(t float64) v3.Vec {
	return h.c1.Add(h.c2.MulScalar(2).Add(h.c3.MulScalar(3 * t)).MulScalar(t))
}

// segment returns the index of the segment containing t and the position
// within that segment.
func (cr CatmullRom) segment(t float64) (int, float64) {
	l := len(cr.Points)
	n := l - 1
	if cr.Closed {
		n = l
	}
	p := float64(n) * clamp(t, 0, 1)
	i := int(math.Floor(p))
	w := p - float64(i)
	if cr.Closed {
		i %= l
	} else if i >= l-1 {
		i, w = l-2, 1
	}
	return i, w
}

// cubic returns the cubic for segment i, going from point i to point i+1.
func (cr CatmullRom) cubic(i int) hermite {
	pts := cr.Points
	l := len(pts)

	var p0, p3 v3.Vec
	if cr.Closed || i > 0 {
		p0 = pts[(i-1+l)%l]
	} else {
		p0 = pts[0].MulScalar(2).Sub(pts[1])
	}
	p1 := pts[i%l]
	p2 := pts[(i+1)%l]
	if cr.Closed || i+2 < l {
		p3 = pts[(i+2)%l]
	} else {
		p3 = pts[l-1].MulScalar(2).Sub(pts[l-2])
	}

	if cr.Type == Uniform {
		return newHermite(p1, p2, p2.Sub(p0).MulScalar(cr.Tension), p3.Sub(p1).MulScalar(cr.Tension))
	}

	// Knot spacing is a power of the chord length: ½ for centripetal, 1 for
	// chordal.
	pow := 0.25
	if cr.Type == Chordal {
		pow = 0.5
	}
	dt0 := math.Pow(p1.Sub(p0).Length2(), pow)
	dt1 := math.Pow(p2.Sub(p1).Length2(), pow)
	dt2 := math.Pow(p3.Sub(p2).Length2(), pow)
	if dt1 < minKnotSpacing {
		dt1 = 1.0
	}
	if dt0 < minKnotSpacing {
		dt0 = dt1
	}
	if dt2 < minKnotSpacing {
		dt2 = dt1
	}

	// tangents for the non-uniform spline, rescaled to [0, 1]
	t1 := p1.Sub(p0).MulScalar(1 / dt0).
		Sub(p2.Sub(p0).MulScalar(1 / (dt0 + dt1))).
		Add(p2.Sub(p1).MulScalar(1 / dt1)).
		MulScalar(dt1)
	t2 := p2.Sub(p1).MulScalar(1 / dt1).
		Sub(p3.Sub(p1).MulScalar(1 / (dt1 + dt2))).
		Add(p3.Sub(p2).MulScalar(1 / dt2)).
		MulScalar(dt1)
	return newHermite(p1, p2, t1, t2)
}

func (cr CatmullRom) PointAtT(t float64) v3.Vec {
	if len(cr.Points) == 1 {
		return cr.Points[0]
	}
	i, w := cr.segment(t)
	return cr.cubic(i).eval(w)
}

// TangentAtT implements [Tangenter].
func (cr CatmullRom) TangentAtT(t float64) v3.Vec {
	if len(cr.Points) == 1 {
		return v3.Vec{}
	}
	i, w := cr.segment(t)
	return cr.cubic(i).deriv(w)
}

func (cr CatmullRom) RadiusAtT(t float64) float64 {
	if len(cr.Radii) == 1 {
		return cr.Radii[0]
	}
	i, w := cr.segment(t)
	return lerp(cr.Radii[i], cr.Radii[(i+1)%len(cr.Radii)], w)
}
