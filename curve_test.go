package tubular

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}

func TestNewPanics(t *testing.T) {
	expectPanic(t, "mismatched radii", func() {
		NewLinear([]v3.Vec{{}, {X: 1}}, []float64{1}, false)
	})
	expectPanic(t, "no points", func() {
		NewLinear(nil, nil, false)
	})
	expectPanic(t, "nil BasisFunc", func() {
		New(Strand{Points: []v3.Vec{{}}, Radii: []float64{1}}, nil, nil)
	})
}

func TestNewCopiesStrand(t *testing.T) {
	pts := []v3.Vec{{}, {X: 10}}
	radii := []float64{1, 2}
	c := NewLinear(pts, radii, false)
	pts[1] = v3.Vec{Y: 5}
	radii[1] = 7

	diff(t, Strand{Points: []v3.Vec{{}, {X: 10}}, Radii: []float64{1, 2}}, c.Strand())
	if p := c.PointAt(1); p != (v3.Vec{X: 10}) {
		t.Errorf("got end point %v, want (10, 0, 0)", p)
	}
}

func TestNewOptionsDefaults(t *testing.T) {
	c := New(Strand{Points: []v3.Vec{{}}, Radii: []float64{1}}, LinearBasis, &Options{Tolerance: 1e-3})
	want := DefaultOptions
	want.Tolerance = 1e-3
	diff(t, want, c.Options())
}

func TestStraightLine(t *testing.T) {
	c := straightLine()
	diff(t, v3.Vec{X: 5}, c.PointAt(0.5), approx(1e-9))
	for _, u := range []float64{0, 0.1, 0.5, 0.77, 1} {
		diff(t, v3.Vec{X: 1}, c.TangentAt(u), approx(1e-12))
		if r := c.RadiusAt(u); r != 1 {
			t.Errorf("got radius %g at u=%g, want 1", r, u)
		}
	}
}

func TestStraightLineRoundTrip(t *testing.T) {
	start := v3.Vec{X: 1, Y: 2, Z: 3}
	dir := v3.Vec{X: 2, Y: -1, Z: 2}.Normalize()
	const length = 12.0

	check := func(c *Curve, eps float64) {
		t.Helper()
		if l := c.Length(); math.Abs(l-length) > 1e-9 {
			t.Fatalf("got length %g, want %g", l, length)
		}
		for i := 0; i <= 40; i++ {
			u := float64(i) / 40
			want := start.Add(dir.MulScalar(u * length))
			if got := c.PointAt(u); !vecNear(got, want, eps) {
				t.Errorf("PointAt(%g) = %v, want %v", u, got, want)
			}
		}
	}

	// Evenly spaced points move at uniform speed, so u and t coincide.
	even := []v3.Vec{
		start,
		start.Add(dir.MulScalar(4)),
		start.Add(dir.MulScalar(8)),
		start.Add(dir.MulScalar(length)),
	}
	check(NewLinear(even, ones(len(even)), false), 1e-6)

	// Unevenly spaced points change speed at every point. The mapping is
	// only exact up to the resolution of the arc-length table there.
	uneven := []v3.Vec{
		start,
		start.Add(dir.MulScalar(1)),
		start.Add(dir.MulScalar(1.5)),
		start.Add(dir.MulScalar(length)),
	}
	check(NewLinear(uneven, ones(len(uneven)), false), 0.05)
}

func TestTangentAtTClosedWraps(t *testing.T) {
	c := NewLinear(square(), ones(4), true)
	t0 := c.TangentAtT(0)
	t1 := c.TangentAtT(1)
	if !vecNear(t0, t1, 1e-9) {
		t.Errorf("tangents at the seam differ: %v and %v", t0, t1)
	}
	// At the first corner, the finite difference averages the incoming edge
	// (0,1)→(0,0) and the outgoing edge (0,0)→(1,0).
	want := v3.Vec{X: 1, Y: -1}.Normalize()
	diff(t, want, t0, approx(1e-9))
}

func TestTangentAtTOpenClamps(t *testing.T) {
	c := NewLinear(square(), ones(4), false)
	diff(t, v3.Vec{X: 1}, c.TangentAtT(0), approx(1e-12))
	diff(t, v3.Vec{X: -1}, c.TangentAtT(1), approx(1e-12))
}

func TestTangentAtTStationary(t *testing.T) {
	c := NewLinear([]v3.Vec{{X: 1}, {X: 1}}, ones(2), false)
	if tan := c.TangentAtT(0.5); tan != (v3.Vec{}) {
		t.Errorf("got tangent %v for a stationary curve, want zero", tan)
	}
}

func TestBoundingBox(t *testing.T) {
	c := straightLine()
	want := sdf.Box3{Min: v3.Vec{X: -1, Y: -1, Z: -1}, Max: v3.Vec{X: 11, Y: 1, Z: 1}}
	diff(t, want, c.BoundingBox(), approx(1e-9))
}

func TestBoundingBoxRadii(t *testing.T) {
	c := NewLinear(square(), []float64{0.1, 0.2, 0.3, 0.4}, true)
	box := c.BoundingBox()
	if box.Min.Z > -0.4+1e-9 || box.Max.Z < 0.4-1e-9 {
		t.Errorf("box %v doesn't cover the largest radius", box)
	}
	if box.Max.X < 1.2 || box.Min.X > -0.1 {
		t.Errorf("box %v doesn't cover the padded corners", box)
	}
}
