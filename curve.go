package tubular

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Basis describes a curve basis evaluated at its native parameter t ∈ [0, 1].
//
// The native parameter is whatever the basis finds convenient, commonly one
// unit per control point segment. It is generally not proportional to arc
// length; [Curve] takes care of that.
type Basis interface {
	// PointAtT returns the point at native parameter t.
	PointAtT(t float64) v3.Vec
	// RadiusAtT returns the strand radius at native parameter t.
	RadiusAtT(t float64) float64
}

// Tangenter is an optional interface implemented by bases that can compute
// their derivative analytically. The returned vector need not be normalized.
//
// Bases that don't implement Tangenter get a finite difference estimate, see
// [Curve.TangentAtT].
type Tangenter interface {
	TangentAtT(t float64) v3.Vec
}

// BasisFunc constructs a basis for the control data of a strand.
type BasisFunc func(s Strand) Basis

// Strand is the decoded control data of a single hair strand.
type Strand struct {
	Points []v3.Vec
	Radii  []float64
	Closed bool
}

func (s Strand) check() {
	if len(s.Points) != len(s.Radii) {
		panic(fmt.Sprintf("tubular: strand has %d points but %d radii", len(s.Points), len(s.Radii)))
	}
	if len(s.Points) == 0 {
		panic("tubular: strand has no points")
	}
}

func (s Strand) clone() Strand {
	return Strand{
		Points: slices.Clone(s.Points),
		Radii:  slices.Clone(s.Radii),
		Closed: s.Closed,
	}
}

// Options specifies the numeric parameters of a [Curve]. Zero fields are
// replaced by the corresponding field of [DefaultOptions].
type Options struct {
	// Number of uniform parameter steps of the arc-length table used by
	// [Curve.UToT].
	Divisions int
	// Absolute tolerance for treating an arc length as an exact table match,
	// and for treating a fixed normal as unit length.
	Tolerance float64
	// Step of the finite difference used by [Curve.TangentAtT].
	TangentDelta float64
}

var DefaultOptions = Options{
	Divisions:    200,
	Tolerance:    1e-6,
	TangentDelta: 0.001,
}

func (o Options) withDefaults() Options {
	if o.Divisions <= 0 {
		o.Divisions = DefaultOptions.Divisions
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultOptions.Tolerance
	}
	if o.TangentDelta <= 0 {
		o.TangentDelta = DefaultOptions.TangentDelta
	}
	return o
}

// Curve is a 3D space curve through the control points of a strand, with a
// radius attached to every point. It maps the uniform parameter u, which is
// proportional to arc length, to the native parameter t of its [Basis].
//
// A Curve is immutable, except for its lazily computed arc-length table.
// Access to that table is serialized, so a Curve may be shared between
// goroutines, but workers processing many strands in parallel are better off
// with a Curve each.
type Curve struct {
	strand Strand
	basis  Basis
	opts   Options

	mu     sync.Mutex
	arclen arcLengthCache
}

// New returns a curve for the strand s, evaluated by the basis that fn
// constructs. opts may be nil to use [DefaultOptions].
//
// New panics if s has no points, or if the numbers of points and radii
// differ. Those indicate a defect in whatever decoded the strand.
func New(s Strand, fn BasisFunc, opts *Options) *Curve {
	s.check()
	if fn == nil {
		panic("tubular: nil BasisFunc")
	}
	s = s.clone()
	var o Options
	if opts != nil {
		o = *opts
	}
	basis := fn(s)
	if basis == nil {
		panic("tubular: BasisFunc returned nil")
	}
	return &Curve{
		strand: s,
		basis:  basis,
		opts:   o.withDefaults(),
	}
}

// NewLinear returns a curve that interpolates linearly between successive
// points. See [Linear].
func NewLinear(points []v3.Vec, radii []float64, closed bool) *Curve {
	return New(Strand{points, radii, closed}, LinearBasis, nil)
}

// NewCatmullRom returns a centripetal Catmull-Rom spline through the points.
// See [CatmullRom].
func NewCatmullRom(points []v3.Vec, radii []float64, closed bool) *Curve {
	return New(Strand{points, radii, closed}, CatmullRomBasis(Centripetal, 0.5), nil)
}

// NewBezier returns a single Bézier curve using the points as its control
// polygon. See [Bezier].
func NewBezier(points []v3.Vec, radii []float64, closed bool) *Curve {
	return New(Strand{points, radii, closed}, BezierBasis, nil)
}

// Strand returns a copy of the curve's control data.
func (c *Curve) Strand() Strand {
	return c.strand.clone()
}

// Closed reports whether the curve forms a loop.
func (c *Curve) Closed() bool {
	return c.strand.Closed
}

// Basis returns the basis the curve evaluates.
func (c *Curve) Basis() Basis {
	return c.basis
}

// Options returns the numeric parameters of the curve, with defaults filled
// in.
func (c *Curve) Options() Options {
	return c.opts
}

// PointAtT returns the point at native parameter t.
func (c *Curve) PointAtT(t float64) v3.Vec {
	return c.basis.PointAtT(t)
}

// RadiusAtT returns the radius at native parameter t.
func (c *Curve) RadiusAtT(t float64) float64 {
	return c.basis.RadiusAtT(t)
}

// TangentAtT returns the unit tangent at native parameter t.
//
// If the basis implements [Tangenter], its derivative is used. Otherwise the
// tangent is estimated by a symmetric finite difference of [Basis.PointAtT]
// at t-δ and t+δ, with δ = [Options.TangentDelta]. On open curves the samples
// are clamped to [0, 1]; on closed curves they wrap around, so that the
// tangents at t = 0 and t = 1 agree.
//
// The zero vector is returned where the curve is stationary.
func (c *Curve) TangentAtT(t float64) v3.Vec {
	if tan, ok := c.basis.(Tangenter); ok {
		return normalizeOrZero(tan.TangentAtT(t))
	}

	delta := c.opts.TangentDelta
	t1 := t - delta
	t2 := t + delta
	if c.strand.Closed {
		t1 -= math.Floor(t1)
		t2 -= math.Floor(t2)
	} else {
		t1 = max(t1, 0)
		t2 = min(t2, 1)
	}
	pt1 := c.basis.PointAtT(t1)
	pt2 := c.basis.PointAtT(t2)
	return normalizeOrZero(pt2.Sub(pt1))
}

// PointAt returns the point at uniform parameter u ∈ [0, 1], that is, the
// point at arc length u × [Curve.Length] from the start of the curve.
func (c *Curve) PointAt(u float64) v3.Vec {
	return c.PointAtT(c.UToT(u))
}

// RadiusAt returns the radius at uniform parameter u.
func (c *Curve) RadiusAt(u float64) float64 {
	return c.RadiusAtT(c.UToT(u))
}

// TangentAt returns the unit tangent at uniform parameter u.
func (c *Curve) TangentAt(u float64) v3.Vec {
	return c.TangentAtT(c.UToT(u))
}

// Length returns the length of the curve, as measured by the arc-length
// table with the default number of divisions.
func (c *Curve) Length() float64 {
	ls := c.lengths(-1)
	return ls[len(ls)-1]
}

// BoundingBox returns an axis-aligned box enclosing the tube around the
// curve. The curve is sampled at the same parameters as the arc-length
// table, and every sample is padded by its radius, so the box is exact for
// linear strands and an approximation otherwise.
func (c *Curve) BoundingBox() sdf.Box3 {
	n := c.opts.Divisions
	var box sdf.Box3
	for p := 0; p <= n; p++ {
		t := float64(p) / float64(n)
		pt := c.basis.PointAtT(t)
		r := math.Abs(c.basis.RadiusAtT(t))
		pad := v3.Vec{X: r, Y: r, Z: r}
		lo, hi := pt.Sub(pad), pt.Add(pad)
		if p == 0 {
			box = sdf.Box3{Min: lo, Max: hi}
			continue
		}
		box.Min = box.Min.Min(lo)
		box.Max = box.Max.Max(hi)
	}
	return box
}
