package curve

import (
	"github.com/chazu/curvekit/pkg/geom"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Ray is an infinite line through point along direction.
type Ray[V geom.Vec[V]] struct {
	point     V
	direction geom.Direction[V]
}

// NewRay returns the line through point along direction. The direction
// must already be unit.
func NewRay[V geom.Vec[V]](point V, direction geom.Direction[V]) Ray[V] {
	return Ray[V]{point: point, direction: direction}
}

// Point returns the defining point.
func (r Ray[V]) Point() V { return r.point }

// Direction returns the unit direction.
func (r Ray[V]) Direction() geom.Direction[V] { return r.direction }

// foot returns the foot of the perpendicular from p.
func (r Ray[V]) foot(p V) V {
	return r.point.Add(r.direction.Scale(r.direction.Dot(p.Sub(r.point))))
}

// Ray2 is a line in the plane.
type Ray2 struct {
	Ray[v2.Vec]
}

var (
	_ Line[v2.Vec]               = Ray2{}
	_ UntrimmedProjector[v2.Vec] = Ray2{}
	_ SignedDistancer[v2.Vec]    = Ray2{}
)

// NewRay2 returns the 2D line through point along direction.
func NewRay2(point geom.Position2, direction geom.Direction2) Ray2 {
	return Ray2{NewRay(point, direction)}
}

// Project returns the foot of the perpendicular from p. The normal is the
// direction rotated clockwise, so points to the right of the line have a
// positive signed distance.
func (r Ray2) Project(p geom.Position2) Projection[v2.Vec] {
	d := r.direction.Vec()
	n := geom.NewDirection(v2.Vec{X: d.Y, Y: -d.X})
	return Projection[v2.Vec]{Point: r.foot(p), Normal: n, HasNormal: true}
}

// CalculateSignedDistance returns the signed distance from p without
// constructing the projected point.
func (r Ray2) CalculateSignedDistance(p geom.Position2) geom.Length {
	return geom.RotateCW90(r.direction).Dot(p.Sub(r.point))
}

// Ray3 is a line in space. It has no preferred side, so its projections
// carry no normal.
type Ray3 struct {
	Ray[v3.Vec]
}

var (
	_ Line[v3.Vec]          = Ray3{}
	_ ProjectionTargetCurve = Ray3{}
)

// NewRay3 returns the 3D line through point along direction.
func NewRay3(point geom.Position3, direction geom.Direction3) Ray3 {
	return Ray3{NewRay(point, direction)}
}

// Project returns the foot of the perpendicular from p.
func (r Ray3) Project(p geom.Position3) Projection[v3.Vec] {
	return Projection[v3.Vec]{Point: r.foot(p)}
}

// All returns point + direction*t and the constant direction.
func (r Ray3) All(t geom.Parameter) (geom.Position3, geom.Vector3) {
	return r.point.Add(r.direction.Scale(t)), r.direction.Vec()
}

// XYZ returns the position at t.
func (r Ray3) XYZ(t geom.Parameter) geom.Position3 { return XYZ(r, t) }

// Period reports that a line is not periodic.
func (r Ray3) Period() (geom.Parameter, bool) { return 0, false }

// Limits reports that a line's parameter is unrestricted.
func (r Ray3) Limits() (geom.Range[geom.Parameter], bool) {
	return geom.Range[geom.Parameter]{}, false
}

// Closed reports false: a line never returns to its start.
func (r Ray3) Closed() bool { return false }
