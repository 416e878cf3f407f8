package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Direction is a unit vector. The zero value is not a valid direction.
type Direction[V Vec[V]] struct {
	v V
}

type (
	Direction2 = Direction[v2.Vec]
	Direction3 = Direction[v3.Vec]
)

// NewDirection normalizes v. A zero vector yields NaN components.
func NewDirection[V Vec[V]](v V) Direction[V] {
	return Direction[V]{v: v.MulScalar(1 / v.Length())}
}

// NewDirectionUnchecked wraps v without normalizing it. The caller
// guarantees that v already has unit length.
func NewDirectionUnchecked[V Vec[V]](v V) Direction[V] {
	return Direction[V]{v: v}
}

// TryNewDirection normalizes v if its norm exceeds minNorm. Otherwise it
// reports false and the returned direction must not be used.
func TryNewDirection[V Vec[V]](v V, minNorm float64) (Direction[V], bool) {
	n := v.Length()
	if n <= minNorm {
		return Direction[V]{}, false
	}
	return Direction[V]{v: v.MulScalar(1 / n)}, true
}

// Vec returns the underlying unit vector.
func (d Direction[V]) Vec() V {
	return d.v
}

// Scale returns the direction scaled to length k.
func (d Direction[V]) Scale(k float64) V {
	return d.v.MulScalar(k)
}

// Dot returns the dot product of the direction and v.
func (d Direction[V]) Dot(v V) float64 {
	return d.v.Dot(v)
}

// Canonical axes.

func X2() Direction2 { return Direction2{v: v2.Vec{X: 1}} }
func Y2() Direction2 { return Direction2{v: v2.Vec{Y: 1}} }
func X3() Direction3 { return Direction3{v: v3.Vec{X: 1}} }
func Y3() Direction3 { return Direction3{v: v3.Vec{Y: 1}} }
func Z3() Direction3 { return Direction3{v: v3.Vec{Z: 1}} }

// RotateCW90 rotates a 2D direction clockwise by a right angle.
func RotateCW90(d Direction2) Direction2 {
	return Direction2{v: v2.Vec{X: d.v.Y, Y: -d.v.X}}
}

// RotateCCW90 rotates a 2D direction counter-clockwise by a right angle.
func RotateCCW90(d Direction2) Direction2 {
	return Direction2{v: v2.Vec{X: -d.v.Y, Y: d.v.X}}
}

// nearZ bounds the x and y components of a direction considered too close
// to the Z axis to be crossed with it.
const nearZ = 1.0 / 64.0

// Perpendicular returns an arbitrary unit vector perpendicular to d. The
// choice is deterministic: Y×d when d is nearly parallel to Z, Z×d otherwise.
func Perpendicular(d Direction3) Direction3 {
	v := d.v
	var ax v3.Vec
	if math.Abs(v.X) < nearZ && math.Abs(v.Y) < nearZ {
		ax = Y3().v.Cross(v)
	} else {
		ax = Z3().v.Cross(v)
	}
	return NewDirection(ax)
}
