// Package field exposes curve projectors as github.com/deadsy/sdfx
// distance fields, so curves can be combined with sdfx solids.
package field

import (
	"math"

	"github.com/chazu/curvekit/pkg/curve"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ sdf.SDF2 = (*curveField2)(nil)
	_ sdf.SDF3 = (*tubeField3)(nil)
)

// curveField2 evaluates the signed distance of a planar curve.
type curveField2 struct {
	pr curve.UntrimmedProjector[v2.Vec]
	bb sdf.Box2
}

// Field2 returns the signed distance field of a planar curve. Lines are
// unbounded, so the caller supplies the bounding box sdfx should use.
func Field2(pr curve.UntrimmedProjector[v2.Vec], bb sdf.Box2) sdf.SDF2 {
	return &curveField2{pr: pr, bb: bb}
}

// Evaluate returns the signed distance from p to the curve.
func (f *curveField2) Evaluate(p v2.Vec) float64 {
	return curve.SignedDistance(f.pr, p)
}

// BoundingBox returns the box given at construction.
func (f *curveField2) BoundingBox() sdf.Box2 {
	return f.bb
}

// tubeField3 is the solid swept by a ball of the given radius along a
// space curve.
type tubeField3 struct {
	pr     curve.UntrimmedProjector[v3.Vec]
	radius float64
	bb     sdf.Box3
}

// Tube3 returns the field of a tube of the given radius around a space
// curve: the distance to the curve minus radius.
func Tube3(pr curve.UntrimmedProjector[v3.Vec], radius float64, bb sdf.Box3) sdf.SDF3 {
	return &tubeField3{pr: pr, radius: radius, bb: bb}
}

// Evaluate returns the distance from p to the tube surface.
func (f *tubeField3) Evaluate(p v3.Vec) float64 {
	return curve.SignedDistance(f.pr, p) - f.radius
}

// BoundingBox returns the box given at construction.
func (f *tubeField3) BoundingBox() sdf.Box3 {
	return f.bb
}

// CircleBox2 returns the axis-aligned bounds of a planar circle.
func CircleBox2(c curve.Circle[v2.Vec]) sdf.Box2 {
	r := math.Abs(c.Radius())
	d := v2.Vec{X: r, Y: r}
	return sdf.Box2{Min: c.Center().Sub(d), Max: c.Center().Add(d)}
}

// CircleBox3 returns the tight axis-aligned bounds of a circle in space.
// Along each axis the circle extends r*sqrt(1 - a_i^2), a being its axis.
func CircleBox3(c curve.Circle[v3.Vec]) sdf.Box3 {
	r := math.Abs(c.Radius())
	a := c.AxisDirection().Vec()
	d := v3.Vec{
		X: r * math.Sqrt(math.Max(0, 1-a.X*a.X)),
		Y: r * math.Sqrt(math.Max(0, 1-a.Y*a.Y)),
		Z: r * math.Sqrt(math.Max(0, 1-a.Z*a.Z)),
	}
	return sdf.Box3{Min: c.Center().Sub(d), Max: c.Center().Add(d)}
}

// Enlarge grows a box by margin on every side, e.g. by a tube radius.
func Enlarge(bb sdf.Box3, margin float64) sdf.Box3 {
	m := v3.Vec{X: margin, Y: margin, Z: margin}
	return sdf.Box3{Min: bb.Min.Sub(m), Max: bb.Max.Add(m)}
}
