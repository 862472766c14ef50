package tubular

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those in vectors and frames, to within
// an absolute error of eps.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func vecNear(a, b v3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func straightLine() *Curve {
	return NewLinear([]v3.Vec{{}, {X: 10}}, []float64{1, 1}, false)
}

// square returns the corners of the unit square in the XY plane.
func square() []v3.Vec {
	return []v3.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

// saddle returns points on a closed, non-planar loop.
func saddle(n int) []v3.Vec {
	pts := make([]v3.Vec, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = v3.Vec{X: math.Cos(th), Y: math.Sin(th), Z: 0.5 * math.Sin(2*th)}
	}
	return pts
}

func ones(n int) []float64 {
	rs := make([]float64, n)
	for i := range rs {
		rs[i] = 1
	}
	return rs
}
