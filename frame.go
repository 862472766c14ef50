package tubular

import (
	"fmt"
	"math"
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Frame is an orthonormal frame attached to a point of a curve. Binormal is
// Tangent × Normal.
type Frame struct {
	Tangent  v3.Vec
	Normal   v3.Vec
	Binormal v3.Vec
}

// Offset returns the offset from the curve point to the point at the given
// angle on a circle of the given radius in the frame's normal plane. An angle
// of 0 points along the normal, π/2 along the binormal.
func (f Frame) Offset(angle, radius float64) v3.Vec {
	sin, cos := math.Sincos(angle)
	return f.Normal.MulScalar(cos).Add(f.Binormal.MulScalar(sin)).MulScalar(radius)
}

// IsOrthonormal reports whether the frame's vectors have unit length, are
// pairwise perpendicular and right-handed, all within eps.
func (f Frame) IsOrthonormal(eps float64) bool {
	unit := func(v v3.Vec) bool { return math.Abs(v.Length()-1) <= eps }
	if !unit(f.Tangent) || !unit(f.Normal) || !unit(f.Binormal) {
		return false
	}
	if math.Abs(f.Tangent.Dot(f.Normal)) > eps ||
		math.Abs(f.Tangent.Dot(f.Binormal)) > eps ||
		math.Abs(f.Normal.Dot(f.Binormal)) > eps {
		return false
	}
	return f.Tangent.Cross(f.Normal).Sub(f.Binormal).Length() <= eps
}

// FrenetFrames appends segments+1 rotation-minimizing frames to dst and
// returns the extended slice. Frame i belongs to the uniform parameter
// u = i / segments.
//
// The first normal is perpendicular to the first tangent, pointing away from
// the coordinate axis the tangent is most aligned with. Every following
// frame is the previous one rotated by the smallest rotation that carries
// the previous tangent onto the current one, so the frames twist as little
// as possible.
//
// If closed is true, the twist accumulated over the loop is spread evenly
// over all frames, so that the last frame coincides with the first.
//
// FrenetFrames panics if segments is less than 1.
func (c *Curve) FrenetFrames(dst []Frame, segments int, closed bool) []Frame {
	return c.frenetFrames(dst, segments, closed, v3.Vec{})
}

// FrenetFramesFixNormal is like [Curve.FrenetFrames], but derives the first
// normal from fixNormal instead of the coordinate axes. This keeps the
// orientation of many independent strands consistent.
//
// The first normal is Tangent × normalize(Tangent × fixNormal), which lies
// on the line of fixNormal, pointing opposite to it, when fixNormal is
// perpendicular to the first tangent. A zero fixNormal, or one parallel to
// the first tangent, falls back to the automatic choice.
func (c *Curve) FrenetFramesFixNormal(dst []Frame, segments int, closed bool, fixNormal v3.Vec) []Frame {
	return c.frenetFrames(dst, segments, closed, normalizeOrZero(fixNormal))
}

func (c *Curve) frenetFrames(dst []Frame, segments int, closed bool, hint v3.Vec) []Frame {
	if segments < 1 {
		panic(fmt.Sprintf("tubular: need at least 1 segment, got %d", segments))
	}

	start := len(dst)
	dst = slices.Grow(dst, segments+1)[:start+segments+1]
	frames := dst[start:]

	for i := range frames {
		u := float64(i) / float64(segments)
		frames[i] = Frame{Tangent: normalizeOrZero(c.TangentAt(u))}
	}
	frames[0].Normal, frames[0].Binormal = initialNormal(frames[0].Tangent, hint, c.opts.Tolerance)

	propagateFrames(frames)
	if closed {
		closeFrames(frames)
	}
	return dst
}

// pickAxis returns the coordinate axis with the smallest absolute tangent
// component. Axes are scanned in x, y, z order and a later axis wins ties.
func pickAxis(tangent v3.Vec) v3.Vec {
	var axis v3.Vec
	minimum := math.MaxFloat64
	tx := math.Abs(tangent.X)
	ty := math.Abs(tangent.Y)
	tz := math.Abs(tangent.Z)
	if tx <= minimum {
		minimum = tx
		axis = v3.Vec{X: 1}
	}
	if ty <= minimum {
		minimum = ty
		axis = v3.Vec{Y: 1}
	}
	if tz <= minimum {
		axis = v3.Vec{Z: 1}
	}
	return axis
}

// initialNormal returns a normal and binormal perpendicular to tangent.
// hint is used as the reference axis if it has unit length within
// tolerance, otherwise [pickAxis] chooses one.
func initialNormal(tangent, hint v3.Vec, tolerance float64) (normal, binormal v3.Vec) {
	var vec v3.Vec
	if math.Abs(hint.Length()-1) < tolerance {
		vec = normalizeOrZero(tangent.Cross(hint))
	}
	if vec == (v3.Vec{}) {
		vec = normalizeOrZero(tangent.Cross(pickAxis(tangent)))
	}
	normal = tangent.Cross(vec)
	binormal = tangent.Cross(normal)
	return normal, binormal
}

// propagateFrames computes the normals and binormals of frames[1:] from
// frames[0] and the tangents of all frames.
func propagateFrames(frames []Frame) {
	for i := 1; i < len(frames); i++ {
		prev, cur := &frames[i-1], &frames[i]
		cur.Normal = prev.Normal
		cur.Binormal = prev.Binormal

		axis := prev.Tangent.Cross(cur.Tangent)
		// Nearly parallel tangents carry the normal over unchanged.
		if axis.Length() > machineEpsilon {
			theta := angleBetween(prev.Tangent, cur.Tangent)
			cur.Normal = rotate(normalizeOrZero(axis), theta, cur.Normal)
		}

		cur.Binormal = normalizeOrZero(cur.Tangent.Cross(cur.Normal))
	}
}

// closeFrames rotates every frame about its tangent so that the last normal
// matches the first one. The correction grows linearly along the curve.
func closeFrames(frames []Frame) {
	n := len(frames) - 1
	first, last := frames[0], frames[n]

	total := angleBetween(first.Normal, last.Normal)
	theta := total / float64(n)
	if first.Tangent.Dot(first.Normal.Cross(last.Normal)) > 0 {
		theta = -theta
	}
	Logger().Debug("closing frame loop", "segments", n, "angle", total)

	for i := 1; i <= n; i++ {
		f := &frames[i]
		f.Normal = rotate(f.Tangent, theta*float64(i), f.Normal)
		f.Binormal = f.Tangent.Cross(f.Normal)
	}
}
