package tubular

import "slices"

// arcLengthCache holds the cumulative arc lengths of a curve, sampled at
// divisions+1 uniform steps of the native parameter.
//
// lengths is never modified once stored. Rebuilding allocates a new slice,
// so snapshots handed out earlier stay valid.
type arcLengthCache struct {
	lengths   []float64
	divisions int
	stale     bool
	// number of times the table was built
	builds int
}

// Lengths returns the cumulative arc-length table of the curve, sampled at
// t = p / divisions for p = 0, …, divisions. The first entry is 0, entries
// are non-decreasing, and the last entry is the length of the curve.
//
// A negative divisions uses [Options.Divisions]. The table is cached;
// calling Lengths again with the same divisions doesn't recompute it unless
// [Curve.Invalidate] was called in between. The returned slice is a copy and
// may be modified by the caller.
func (c *Curve) Lengths(divisions int) []float64 {
	return slices.Clone(c.lengths(divisions))
}

// Invalidate marks the arc-length table as stale, forcing the next query to
// rebuild it. Curves are immutable, so this is only needed by bases whose
// evaluation depends on external state.
func (c *Curve) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.arclen.stale = true
}

// lengths is like Lengths but returns the cached slice itself, which must
// not be modified.
func (c *Curve) lengths(divisions int) []float64 {
	if divisions < 0 {
		divisions = c.opts.Divisions
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ac := &c.arclen; ac.lengths != nil && !ac.stale && ac.divisions == divisions {
		return ac.lengths
	}

	ls := make([]float64, divisions+1)
	if divisions > 0 {
		last := c.basis.PointAtT(0)
		var sum float64
		for p := 1; p <= divisions; p++ {
			current := c.basis.PointAtT(float64(p) / float64(divisions))
			sum += distance(last, current)
			ls[p] = sum
			last = current
		}
	}

	c.arclen = arcLengthCache{
		lengths:   ls,
		divisions: divisions,
		builds:    c.arclen.builds + 1,
	}
	Logger().Debug("built arc-length table", "divisions", divisions, "length", ls[divisions])
	return ls
}
