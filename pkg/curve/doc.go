// Package curve defines rays and circles in 2D and 3D, the capability
// interfaces they satisfy, and the closed-form algorithms that project a
// point onto the untrimmed extent of each curve.
//
// Algorithms are written once against a capability (Line, Circle) and
// shared by every concrete shape that provides it. Degenerate queries,
// such as a point on a circle's axis, resolve to a fixed fallback
// direction; no operation in this package returns an error.
//
// Only ToDynamic erases the concrete curve type. Everywhere else calls are
// resolved statically on the concrete shape.
package curve
