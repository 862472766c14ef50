package tubular

import "math"

// UToT maps the uniform parameter u ∈ [0, 1] to the native parameter t of
// the curve's basis, such that the arc length from the start of the curve to
// t is u times the length of the curve.
//
// The mapping searches the arc-length table (see [Curve.Lengths]) and
// interpolates linearly between its samples. UToT(0) is 0 and UToT(1) is 1;
// values outside [0, 1] are clamped.
func (c *Curve) UToT(u float64) float64 {
	return uToT(c.lengths(-1), u, c.opts.Tolerance)
}

// uToT maps u to t using the cumulative arc-length table ls.
func uToT(ls []float64, u, tolerance float64) float64 {
	il := len(ls)
	if il < 2 || u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	total := ls[il-1]
	if total <= 0 {
		// Every t is at arc length 0. Don't collapse the curve onto its
		// first sample.
		return u
	}

	target := u * total

	// Binary search for the largest index whose length is not greater than
	// the target. An exact match ends the search.
	low, high := 0, il-1
	for low <= high {
		i := low + (high-low)/2
		comparison := ls[i] - target
		if comparison < 0 {
			low = i + 1
		} else if comparison > 0 {
			high = i - 1
		} else {
			high = i
			break
		}
	}

	i := high
	switch {
	case i < 0:
		return 0
	case i >= il-1:
		return 1
	}

	if math.Abs(ls[i]-target) < tolerance {
		return float64(i) / float64(il-1)
	}

	before := ls[i]
	after := ls[i+1]
	segmentLength := after - before
	if segmentLength <= 0 {
		return float64(i) / float64(il-1)
	}
	// where between the two samples the target lies
	segmentFraction := (target - before) / segmentLength
	return (float64(i) + segmentFraction) / float64(il-1)
}
