package tubular

import (
	"iter"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sample is everything needed to place one ring of a tube around a curve.
type Sample struct {
	// Uniform parameter of the sample.
	U      float64
	Point  v3.Vec
	Radius float64
	Frame  Frame
}

// Samples returns an iterator over segments+1 samples at u = i / segments,
// pairing each point and radius with its rotation-minimizing frame. If
// fixNormal is not nil, the frames are computed by
// [Curve.FrenetFramesFixNormal], otherwise by [Curve.FrenetFrames].
//
// The frames are computed in full before the first sample is yielded.
func (c *Curve) Samples(segments int, closed bool, fixNormal *v3.Vec) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		var frames []Frame
		if fixNormal != nil {
			frames = c.FrenetFramesFixNormal(nil, segments, closed, *fixNormal)
		} else {
			frames = c.FrenetFrames(nil, segments, closed)
		}
		for i, f := range frames {
			u := float64(i) / float64(segments)
			t := c.UToT(u)
			s := Sample{
				U:      u,
				Point:  c.PointAtT(t),
				Radius: c.RadiusAtT(t),
				Frame:  f,
			}
			if !yield(s) {
				return
			}
		}
	}
}
