package curve

import (
	"math"

	"github.com/chazu/curvekit/pkg/geom"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Circle2 is a circle in the plane.
type Circle2 struct {
	radius geom.Length
	center geom.Position2
}

var (
	_ Circle[v2.Vec]             = Circle2{}
	_ UntrimmedProjector[v2.Vec] = Circle2{}
	_ SignedDistancer[v2.Vec]    = Circle2{}
)

// NewCircle2 returns a circle. The radius is not validated.
func NewCircle2(radius geom.Length, center geom.Position2) Circle2 {
	return Circle2{radius: radius, center: center}
}

func (c Circle2) Radius() geom.Length { return c.radius }
func (c Circle2) Center() geom.Position2 { return c.center }
func (c Circle2) AxisDirection() geom.Direction3 { return geom.Z3() }

// Project implements UntrimmedProjector.
func (c Circle2) Project(p geom.Position2) Projection[v2.Vec] {
	return ProjectCircle2(c, p)
}

// CalculateSignedDistance is negative inside the circle and positive
// outside.
func (c Circle2) CalculateSignedDistance(p geom.Position2) geom.Length {
	return p.Sub(c.center).Length() - c.radius
}

// ProjectCircle2 projects p onto any planar circle. The normal is the
// circle's outward normal at the projected point. A query at the center
// projects along +X.
func ProjectCircle2(c Circle[v2.Vec], p geom.Position2) Projection[v2.Vec] {
	center := c.Center()
	n, ok := geom.TryNewDirection(p.Sub(center), geom.DivOverflow)
	if !ok {
		n = geom.X2()
	}
	return Projection[v2.Vec]{
		Point:     center.Add(n.Scale(c.Radius())),
		Normal:    n,
		HasNormal: true,
	}
}

// ProjectCircle3 projects p onto any circle in space. The axial component
// of p - center is discarded; a query on the axis itself projects along
// geom.Perpendicular(axis). The projection carries no normal.
func ProjectCircle3(c Circle[v3.Vec], p geom.Position3) Projection[v3.Vec] {
	center := c.Center()
	axis := c.AxisDirection()
	v0 := p.Sub(center)
	v1 := v0.Sub(axis.Scale(axis.Dot(v0)))
	n, ok := geom.TryNewDirection(v1, geom.DivOverflow)
	if !ok {
		n = geom.Perpendicular(axis)
	}
	return Projection[v3.Vec]{Point: center.Add(n.Scale(c.Radius()))}
}

// Circle3 is a circle in space lying in the plane through center normal
// to axis.
type Circle3 struct {
	radius geom.Length
	center geom.Position3
	axis   geom.Direction3
}

var (
	_ Circle[v3.Vec]             = Circle3{}
	_ UntrimmedProjector[v3.Vec] = Circle3{}
)

// NewCircle3 returns a circle. The axis must be unit; the radius is not
// validated.
func NewCircle3(radius geom.Length, center geom.Position3, axis geom.Direction3) Circle3 {
	return Circle3{radius: radius, center: center, axis: axis}
}

func (c Circle3) Radius() geom.Length { return c.radius }
func (c Circle3) Center() geom.Position3 { return c.center }
func (c Circle3) AxisDirection() geom.Direction3 { return c.axis }

// Project implements UntrimmedProjector.
func (c Circle3) Project(p geom.Position3) Projection[v3.Vec] {
	return ProjectCircle3(c, p)
}

// ParametricCircle is a circle of the given radius in the local XY plane
// of a rigid transform. The transform's origin is the center and its third
// rotation column is the axis.
type ParametricCircle struct {
	tr     geom.Transform3
	radius geom.Length
}

var (
	_ Circle[v3.Vec]        = ParametricCircle{}
	_ ProjectionTargetCurve = ParametricCircle{}
)

// NewParametricCircle places a circle of the given radius with tr.
func NewParametricCircle(tr geom.Transform3, radius geom.Length) ParametricCircle {
	return ParametricCircle{tr: tr, radius: radius}
}

// Transform returns the placement of the circle.
func (c ParametricCircle) Transform() geom.Transform3 { return c.tr }

func (c ParametricCircle) Radius() geom.Length { return c.radius }
func (c ParametricCircle) Center() geom.Position3 { return c.tr.Origin() }

func (c ParametricCircle) AxisDirection() geom.Direction3 {
	return geom.NewDirectionUnchecked(c.tr.Column(2))
}

// Project implements UntrimmedProjector.
func (c ParametricCircle) Project(p geom.Position3) Projection[v3.Vec] {
	return ProjectCircle3(c, p)
}

// All evaluates the circle at angle t. The tangent has the same radius
// scaling as the position: (r sin t, r cos t, 0) in local coordinates.
func (c ParametricCircle) All(t geom.Parameter) (geom.Position3, geom.Vector3) {
	x := math.Cos(t) * c.radius
	y := math.Sin(t) * c.radius
	pos := v3.Vec{X: x, Y: y}
	tangent := v3.Vec{X: y, Y: x}
	return c.tr.TransformPoint(pos), c.tr.TransformVector(tangent)
}

// XYZ returns the position at angle t.
func (c ParametricCircle) XYZ(t geom.Parameter) geom.Position3 { return XYZ(c, t) }

// Period is a full turn.
func (c ParametricCircle) Period() (geom.Parameter, bool) { return 2 * math.Pi, true }

// Limits reports no restriction; the angle wraps with Period.
func (c ParametricCircle) Limits() (geom.Range[geom.Parameter], bool) {
	return geom.Range[geom.Parameter]{}, false
}

// Closed reports true.
func (c ParametricCircle) Closed() bool { return true }
