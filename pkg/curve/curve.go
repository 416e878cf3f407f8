package curve

import (
	"github.com/chazu/curvekit/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Line is an infinite line given by a point on it and a unit direction.
type Line[V geom.Vec[V]] interface {
	Point() V
	Direction() geom.Direction[V]
}

// Circle describes a circle by radius, center and the normal of its
// supporting plane. 2D circles report the out-of-plane Z axis.
type Circle[V geom.Vec[V]] interface {
	Radius() geom.Length
	Center() V
	AxisDirection() geom.Direction3
}

// Projection is the closest point on an untrimmed curve. Normal is only
// meaningful when HasNormal is set.
type Projection[V geom.Vec[V]] struct {
	Point     V
	Normal    geom.Direction[V]
	HasNormal bool
}

// UntrimmedProjector finds the closest point on the full, untrimmed
// extent of a curve.
type UntrimmedProjector[V geom.Vec[V]] interface {
	Project(p V) Projection[V]
}

// SignedDistancer is implemented by projectors that compute the signed
// distance directly instead of deriving it from Project.
type SignedDistancer[V geom.Vec[V]] interface {
	CalculateSignedDistance(p V) geom.Length
}

// SignedDistance returns the distance from p to the curve. It uses the
// projector's own CalculateSignedDistance when there is one and
// DeriveSignedDistance otherwise.
func SignedDistance[V geom.Vec[V]](pr UntrimmedProjector[V], p V) geom.Length {
	if sd, ok := pr.(SignedDistancer[V]); ok {
		return sd.CalculateSignedDistance(p)
	}
	return DeriveSignedDistance(pr, p)
}

// DeriveSignedDistance computes the distance from p to its projection. It
// is signed by the normal when the projection has one and unsigned
// otherwise.
func DeriveSignedDistance[V geom.Vec[V]](pr UntrimmedProjector[V], p V) geom.Length {
	proj := pr.Project(p)
	if proj.HasNormal {
		return proj.Normal.Dot(p.Sub(proj.Point))
	}
	return geom.Distance(p, proj.Point)
}

// ParametricCurve evaluates a 3D curve at a parameter, returning the
// position and a tangent vector.
type ParametricCurve interface {
	All(t geom.Parameter) (geom.Position3, geom.Vector3)
}

// XYZ returns only the position of c at t.
func XYZ(c ParametricCurve, t geom.Parameter) geom.Position3 {
	pos, _ := c.All(t)
	return pos
}

// ParameterSpace describes the domain of a parametrization.
type ParameterSpace interface {
	// Period reports the parameter distance after which the curve repeats.
	Period() (geom.Parameter, bool)
	// Limits reports the parameter range, or false if unrestricted.
	Limits() (geom.Range[geom.Parameter], bool)
	// Closed reports whether the curve's start coincides with its end.
	Closed() bool
}

// ProjectionTargetCurve is a 3D curve that can be both projected onto and
// evaluated.
type ProjectionTargetCurve interface {
	UntrimmedProjector[v3.Vec]
	ParametricCurve
	ParameterSpace
}
