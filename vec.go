package tubular

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/exp/constraints"
)

// machineEpsilon is the float64 machine epsilon, 2⁻⁵².
const machineEpsilon = 0x1p-52

func clamp[T constraints.Float](x, lo, hi T) T {
	return max(lo, min(x, hi))
}

// lerp linearly interpolates between two scalars.
func lerp[T constraints.Float](a, b, t T) T {
	// a + t * (b-a)
	return a + t*(b-a)
}

// lerpVec linearly interpolates between two points.
func lerpVec(a, b v3.Vec, t float64) v3.Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}

// distance returns the euclidean distance between two points.
func distance(a, b v3.Vec) float64 {
	return b.Sub(a).Length()
}

// normalizeOrZero returns a vector of magnitude 1.0 with the same direction
// as v. Unlike [v3.Vec.Normalize], the zero vector maps to itself instead of
// a NaN vector.
func normalizeOrZero(v v3.Vec) v3.Vec {
	l := v.Length()
	if l == 0 {
		return v3.Vec{}
	}
	return v.MulScalar(1.0 / l)
}

// angleBetween returns the angle in radians between two unit vectors.
func angleBetween(a, b v3.Vec) float64 {
	// clamp for floating point errors
	return math.Acos(clamp(a.Dot(b), -1, 1))
}

// rotate rotates v by angle radians about axis, following the right hand
// rule. A zero axis leaves v unchanged.
func rotate(axis v3.Vec, angle float64, v v3.Vec) v3.Vec {
	if axis.Length() == 0 {
		return v
	}
	return sdf.Rotate3d(axis, angle).MulPosition(v)
}

// isNaN reports whether at least one of x, y and z is NaN.
func isNaN(v v3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// isInf reports whether at least one of x, y and z is infinite.
func isInf(v v3.Vec) bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}
