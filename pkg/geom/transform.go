package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Transform3 is a rigid transformation: a rotation followed by a
// translation. It is immutable; composition returns a new value.
type Transform3 struct {
	rotation    sdf.M44
	translation v3.Vec
}

// NewTransform3 builds a transform from a pure rotation matrix and a
// translation. The rotation must be orthonormal with no translation part.
func NewTransform3(rotation sdf.M44, translation v3.Vec) Transform3 {
	return Transform3{rotation: rotation, translation: translation}
}

// Identity3 returns the identity transform.
func Identity3() Transform3 {
	return Transform3{rotation: sdf.Identity3d()}
}

// Translation returns a pure translation by v.
func Translation(v v3.Vec) Transform3 {
	return Transform3{rotation: sdf.Identity3d(), translation: v}
}

// RotationAbout returns a right hand rotation of angle radians about axis.
func RotationAbout(axis Direction3, angle float64) Transform3 {
	return Transform3{rotation: sdf.Rotate3d(axis.Vec(), angle)}
}

// Then returns the transform that applies t first and then u.
func (t Transform3) Then(u Transform3) Transform3 {
	return Transform3{
		rotation:    u.rotation.Mul(t.rotation),
		translation: u.rotation.MulPosition(t.translation).Add(u.translation),
	}
}

// TransformPoint maps a position: rotation, then translation.
func (t Transform3) TransformPoint(p Position3) Position3 {
	return t.rotation.MulPosition(p).Add(t.translation)
}

// TransformVector maps a free vector. Translation does not apply.
func (t Transform3) TransformVector(v Vector3) Vector3 {
	return t.rotation.MulPosition(v)
}

// Origin returns the image of the local origin.
func (t Transform3) Origin() Position3 {
	return t.translation
}

// Column returns rotation column i (0, 1 or 2): the image of the i-th
// local basis vector.
func (t Transform3) Column(i int) Vector3 {
	switch i {
	case 0:
		return t.rotation.MulPosition(v3.Vec{X: 1})
	case 1:
		return t.rotation.MulPosition(v3.Vec{Y: 1})
	case 2:
		return t.rotation.MulPosition(v3.Vec{Z: 1})
	}
	panic("geom: rotation column out of range")
}

// Matrix returns the homogeneous sdfx matrix of the transform.
func (t Transform3) Matrix() sdf.M44 {
	return sdf.Translate3d(t.translation).Mul(t.rotation)
}

// RotationFromZ returns a rotation taking the local +Z axis onto axis,
// about the axis perpendicular to both. When axis is opposite to +Z the
// turn is a half turn about Perpendicular(Z).
func RotationFromZ(axis Direction3) Transform3 {
	z := Z3().Vec()
	a := axis.Vec()
	k, ok := TryNewDirection(z.Cross(a), DivOverflow)
	if !ok {
		if a.Z > 0 {
			return Identity3()
		}
		return RotationAbout(Perpendicular(Z3()), math.Pi)
	}
	return RotationAbout(k, math.Atan2(z.Cross(a).Length(), z.Dot(a)))
}
