package tubular

import (
	"errors"
	"fmt"
	"iter"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ErrInvalidConfig is wrapped by all errors returned by [Config.Validate].
var ErrInvalidConfig = errors.New("tubular: invalid configuration")

// Config holds the numeric parameters a mesh generator passes down for
// every strand it processes.
type Config struct {
	// Number of segments along the curve, yielding Segments+1 frames.
	Segments int
	// Number of steps of the arc-length table.
	Divisions int
	// See [Options.Tolerance].
	Tolerance float64
	// See [Options.TangentDelta].
	TangentDelta float64
	// Reference direction for the first normal of every strand. The zero
	// value picks one automatically per strand.
	FixNormal [3]float64
}

var DefaultConfig = Config{
	Segments:     10,
	Divisions:    DefaultOptions.Divisions,
	Tolerance:    DefaultOptions.Tolerance,
	TangentDelta: DefaultOptions.TangentDelta,
}

func (cfg Config) WithSegments(n int) Config             { cfg.Segments = n; return cfg }
func (cfg Config) WithDivisions(n int) Config            { cfg.Divisions = n; return cfg }
func (cfg Config) WithTolerance(tol float64) Config      { cfg.Tolerance = tol; return cfg }
func (cfg Config) WithTangentDelta(delta float64) Config { cfg.TangentDelta = delta; return cfg }
func (cfg Config) WithFixNormal(x, y, z float64) Config  { cfg.FixNormal = [3]float64{x, y, z}; return cfg }

// Validate reports all invalid fields of the configuration. The returned
// error wraps [ErrInvalidConfig].
func (cfg Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if cfg.Segments < 1 {
		invalid("segments must be at least 1, got %d", cfg.Segments)
	}
	if cfg.Divisions < 1 {
		invalid("divisions must be at least 1, got %d", cfg.Divisions)
	}
	if !(cfg.Tolerance > 0) || math.IsInf(cfg.Tolerance, 0) {
		invalid("tolerance must be positive and finite, got %g", cfg.Tolerance)
	}
	if !(cfg.TangentDelta > 0 && cfg.TangentDelta < 0.5) {
		invalid("tangent delta must be in (0, 0.5), got %g", cfg.TangentDelta)
	}
	if n := cfg.fixNormal(); isNaN(n) || isInf(n) {
		invalid("fix normal must be finite, got %v", cfg.FixNormal)
	}
	return errors.Join(errs...)
}

func (cfg Config) fixNormal() v3.Vec {
	return v3.Vec{X: cfg.FixNormal[0], Y: cfg.FixNormal[1], Z: cfg.FixNormal[2]}
}

// FixNormalVec returns the fixed normal, and whether one is set.
func (cfg Config) FixNormalVec() (v3.Vec, bool) {
	n := cfg.fixNormal()
	return n, n != (v3.Vec{})
}

// Options returns the curve options of the configuration.
func (cfg Config) Options() Options {
	return Options{
		Divisions:    cfg.Divisions,
		Tolerance:    cfg.Tolerance,
		TangentDelta: cfg.TangentDelta,
	}
}

// NewCurve validates the configuration and returns a curve for s with the
// configuration's options. It panics for invalid strands, like [New].
func (cfg Config) NewCurve(s Strand, fn BasisFunc) (*Curve, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := cfg.Options()
	return New(s, fn, &opts), nil
}

// Samples returns the samples of c using the configured number of segments
// and fixed normal. Frames are closed if the curve is.
func (cfg Config) Samples(c *Curve) iter.Seq[Sample] {
	var fix *v3.Vec
	if n, ok := cfg.FixNormalVec(); ok {
		fix = &n
	}
	return c.Samples(cfg.Segments, c.Closed(), fix)
}
