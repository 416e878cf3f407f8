package geom

import "math"

// SameLength reports whether two scalars differ by at most eps.
func SameLength(a, b Length, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// SamePosition reports whether two positions are at most eps apart.
func SamePosition[V Vec[V]](a, b V, eps float64) bool {
	return Distance(a, b) <= eps
}

// SameVector reports whether the difference of two vectors has norm at
// most eps.
func SameVector[V Vec[V]](a, b V, eps float64) bool {
	return a.Sub(b).Length() <= eps
}

// SameDirection compares two directions as vectors.
func SameDirection[V Vec[V]](a, b Direction[V], eps float64) bool {
	return SameVector(a.v, b.v, eps)
}
