package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DivOverflow is the norm below which a vector is treated as zero when
// deriving a direction from it.
const DivOverflow = 1e-15

// Length is a scalar distance or radius.
type Length = float64

// Parameter is a curve parameter: an angle, an arc length or a generic t.
type Parameter = float64

type (
	Position2 = v2.Vec
	Vector2   = v2.Vec
	Position3 = v3.Vec
	Vector3   = v3.Vec
)

// Vec is the set of vector operations the dimension-generic algorithms use.
// It is satisfied by v2.Vec and v3.Vec.
type Vec[V any] interface {
	Add(b V) V
	Sub(b V) V
	MulScalar(k float64) V
	Dot(b V) float64
	Length() float64
}

// Distance returns the euclidean distance between two positions.
func Distance[V Vec[V]](a, b V) Length {
	return a.Sub(b).Length()
}
