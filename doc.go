// Package tubular turns hair strands into parametric 3D curves that can be
// swept into tubes. It provides arc-length parameterization of the curves,
// and rotation-minimizing frames along them.
//
// # Curves and bases
//
// A [Strand] is the decoded control data of one hair strand: an ordered list
// of points, a radius per point, and whether the strand forms a loop. A
// [Basis] turns that data into a curve that can be evaluated at a native
// parameter t ∈ [0, 1]. This package includes the following bases:
//   - [Linear], connecting the points with line segments
//   - [CatmullRom], a spline passing through every point
//   - [Bezier], a single Bézier curve with the points as its control polygon
//
// Bases that can differentiate themselves implement [Tangenter]. Custom bases
// only need to implement [Basis].
//
// [Curve] combines a strand with a basis. Its methods taking a uniform
// parameter u, such as [Curve.PointAt], first map u to t so that equal steps
// in u cover equal arc lengths, using a table of cumulative lengths (see
// [Curve.Lengths] and [Curve.UToT]). Methods taking t, such as
// [Curve.PointAtT], evaluate the basis directly.
//
// # Frames
//
// Sweeping a circle along a curve requires an orientation at every ring.
// [Curve.FrenetFrames] computes a sequence of orthonormal frames (tangent,
// normal, binormal), each one derived from its predecessor by the smallest
// rotation aligning the tangents. Unlike the classic Frenet frame, which
// follows the curvature and flips at inflection points, these frames twist as
// little as possible. For closed curves, the remaining twist between the last
// and first frame is distributed evenly over the loop.
//
// [Curve.FrenetFramesFixNormal] starts from a caller-supplied direction
// instead, which keeps the orientation of many strands consistent.
// [Curve.Samples] pairs frames with points and radii, which is all a mesh
// generator needs to place ring vertices (see [Frame.Offset]).
//
// # Vectors
//
// Points and vectors are [v3.Vec] values from the sdfx CAD library, and
// rotations are computed with its [sdf.Rotate3d].
//
// # Configuration and logging
//
// [Config] collects the numeric parameters shared by all strands of a mesh,
// and [Config.Validate] checks them. The package logs nothing by default;
// see [SetLogger].
//
// [v3.Vec]: https://pkg.go.dev/github.com/deadsy/sdfx/vec/v3#Vec
// [sdf.Rotate3d]: https://pkg.go.dev/github.com/deadsy/sdfx/sdf#Rotate3d
package tubular
